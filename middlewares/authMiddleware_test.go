package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rohitsengar02/CivicConnect/models"
	authUtils "github.com/Rohitsengar02/CivicConnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", AuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	r.GET("/superadmin-only", AuthMiddleware(), RequireRole(models.RoleSuperadmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := get(r, "/admin-only", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := get(r, "/admin-only", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := authUtils.GenerateAndSetToken("64b0c9e1f1a2b3c4d5e6f7a8", "admin")
	require.NoError(t, err)

	w := get(r, "/admin-only", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareReadsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := authUtils.GenerateAndSetToken("64b0c9e1f1a2b3c4d5e6f7a8", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleBlocksLowerRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	adminToken, err := authUtils.GenerateAndSetToken("64b0c9e1f1a2b3c4d5e6f7a8", "admin")
	require.NoError(t, err)

	w := get(r, "/superadmin-only", adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSuperadminPassesEveryGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	superToken, err := authUtils.GenerateAndSetToken("superadmin", "superadmin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/admin-only", superToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/superadmin-only", superToken).Code)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := authUtils.GenerateAndSetToken("64b0c9e1f1a2b3c4d5e6f7a8", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	r := protectedRouter()
	w := get(r, "/admin-only", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
