package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Rohitsengar02/CivicConnect/models"
	"github.com/Rohitsengar02/CivicConnect/repositories"
	authUtils "github.com/Rohitsengar02/CivicConnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// superadminID is the admin_id claim of the environment-configured
// superadmin, which has no backing collection record.
const superadminID = "superadmin"

// RegisterAdmin handles a district admin application. The district
// claim insert is the atomic uniqueness check: the claim document's id
// is the normalized state-district key, so two concurrent applications
// for the same district cannot both succeed.
func RegisterAdmin(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		State    string `json:"state" binding:"required"`
		District string `json:"district" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRegion(input.State, input.District) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state or district"})
		return
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		State:     input.State,
		District:  input.District,
		Role:      models.RoleAdmin,
		Status:    models.ApplicationPending,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claim := models.NewDistrictClaim(input.State, input.District, admin.ID)
	if err := adminRepo.ClaimDistrict(ctx, claim); err != nil {
		if err == repositories.ErrDistrictTaken {
			c.JSON(http.StatusConflict, gin.H{"error": "This district already has a registered admin"})
			return
		}
		log.Println("Error claiming district:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if err := admin.HashPassword(); err != nil {
		releaseClaim(ctx, claim.Key)
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if err := adminRepo.CreateAdmin(ctx, &admin); err != nil {
		// Compensate so a failed registration never leaves the
		// district blocked by an orphaned claim.
		releaseClaim(ctx, claim.Key)
		if err == repositories.ErrEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Println("Error inserting admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        admin.ID,
		"name":      admin.Name,
		"email":     admin.Email,
		"state":     admin.State,
		"district":  admin.District,
		"status":    admin.Status,
		"createdAt": admin.CreatedAt,
		"message":   "Application submitted and pending approval",
	})
}

func releaseClaim(ctx context.Context, key string) {
	if err := adminRepo.ReleaseDistrict(ctx, key); err != nil {
		log.Println("Error releasing district claim:", err)
	}
}

// CheckDistrictAvailability is the advisory probe behind the district
// selection step. The claim insert at registration stays authoritative.
func CheckDistrictAvailability(c *gin.Context) {
	state := c.Query("state")
	district := c.Query("district")

	if !models.ValidRegion(state, district) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state or district"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taken, err := adminRepo.DistrictTaken(ctx, state, district)
	if err != nil {
		log.Println("Error checking district availability:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":     state,
		"district":  district,
		"available": !taken,
	})
}

// LoginAdmin handles admin login. The environment-configured superadmin
// credential pair bypasses the admin collection entirely.
func LoginAdmin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	superEmail := os.Getenv("SUPERADMIN_EMAIL")
	superPassword := os.Getenv("SUPERADMIN_PASSWORD")
	if superEmail != "" && input.Email == superEmail && input.Password == superPassword {
		token, err := authUtils.GenerateAndSetToken(superadminID, string(models.RoleSuperadmin))
		if err != nil {
			log.Println("Error generating token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		setAuthCookie(c, token)

		c.JSON(http.StatusOK, gin.H{
			"name":  "Superadmin",
			"email": superEmail,
			"role":  models.RoleSuperadmin,
			"token": token,
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No admin account found"})
		} else {
			log.Println("Error fetching admin:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	if !admin.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !admin.CanLogin() {
		switch admin.Status {
		case models.ApplicationPending:
			c.JSON(http.StatusForbidden, gin.H{"error": "Your application is pending approval"})
		case models.ApplicationRejected:
			c.JSON(http.StatusForbidden, gin.H{"error": "Your application has been rejected"})
		default:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		}
		return
	}

	token, err := authUtils.GenerateAndSetToken(admin.ID.Hex(), string(admin.Role))
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"id":       admin.ID,
		"name":     admin.Name,
		"email":    admin.Email,
		"state":    admin.State,
		"district": admin.District,
		"role":     admin.Role,
		"token":    token,
	})
}

func setAuthCookie(c *gin.Context, token string) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   int(authUtils.TokenTTL.Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production", // false for HTTP (dev), true for HTTPS (prod)
		HttpOnly: true,                        // still protect from JS access
		SameSite: http.SameSiteNoneMode,       // Required for cross-origin cookies in production
	}
	http.SetCookie(c.Writer, cookie)
}

// GetMe returns the session snapshot of the authenticated admin,
// re-read from the record rather than trusted from the token.
func GetMe(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	roleVal, _ := c.Get("role")
	if adminID.(string) == superadminID && roleVal == string(models.RoleSuperadmin) {
		c.JSON(http.StatusOK, gin.H{
			"name":  "Superadmin",
			"email": os.Getenv("SUPERADMIN_EMAIL"),
			"role":  models.RoleSuperadmin,
		})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(adminID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid admin ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := adminRepo.FindByID(ctx, objectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        admin.ID,
		"name":      admin.Name,
		"email":     admin.Email,
		"state":     admin.State,
		"district":  admin.District,
		"role":      admin.Role,
		"status":    admin.Status,
		"createdAt": admin.CreatedAt,
	})
}

// LogoutAdmin clears the auth_token cookie.
func LogoutAdmin(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// ListApplications returns every admin application partitioned into
// pending, approved and rejected views. Superadmin only.
func ListApplications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	applications, err := adminRepo.ListApplications(ctx)
	if err != nil {
		log.Println("Error listing applications:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	pending := make([]models.Admin, 0)
	approved := make([]models.Admin, 0)
	rejected := make([]models.Admin, 0)
	for _, app := range applications {
		switch app.Status {
		case models.ApplicationPending:
			pending = append(pending, app)
		case models.ApplicationApproved:
			approved = append(approved, app)
		case models.ApplicationRejected:
			rejected = append(rejected, app)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"pending":  pending,
		"approved": approved,
		"rejected": rejected,
	})
}

// DecideApplication approves or rejects a pending application. The
// decision is terminal; a rejected application releases its district
// claim so the district can be applied for again.
func DecideApplication(c *gin.Context) {
	idParam := c.Param("id")
	applicationID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var input struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision := models.ApplicationRejected
	if *input.Approve {
		decision = models.ApplicationApproved
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := adminRepo.FindByID(ctx, applicationID)
	if err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Println("Error fetching application:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	if err := adminRepo.DecideApplication(ctx, applicationID, decision); err != nil {
		switch err {
		case repositories.ErrAlreadyDecided:
			c.JSON(http.StatusConflict, gin.H{"error": "Application already decided"})
		case repositories.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			log.Println("Error deciding application:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		}
		return
	}

	if decision == models.ApplicationRejected {
		releaseClaim(ctx, models.DistrictKey(admin.State, admin.District))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application has been " + string(decision),
		"status":  decision,
	})
}
