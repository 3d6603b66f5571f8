package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistrictKeyNormalization(t *testing.T) {
	assert.Equal(t, "jharkhand-ranchi", DistrictKey("Jharkhand", "Ranchi"))
	assert.Equal(t, "uttar-pradesh-lucknow", DistrictKey("Uttar Pradesh", "Lucknow"))
	assert.Equal(t, "jharkhand-ranchi", DistrictKey("  Jharkhand ", " Ranchi "))
	assert.Equal(t, DistrictKey("DELHI", "New Delhi"), DistrictKey("delhi", "new delhi"))
}

func TestHashAndComparePassword(t *testing.T) {
	admin := Admin{Password: "s3cret-pass"}
	require.NoError(t, admin.HashPassword())
	assert.NotEqual(t, "s3cret-pass", admin.Password)
	assert.True(t, admin.ComparePassword("s3cret-pass"))
	assert.False(t, admin.ComparePassword("wrong"))
}

func TestCanLogin(t *testing.T) {
	assert.True(t, Admin{Role: RoleAdmin, Status: ApplicationApproved}.CanLogin())
	assert.False(t, Admin{Role: RoleAdmin, Status: ApplicationPending}.CanLogin())
	assert.False(t, Admin{Role: RoleAdmin, Status: ApplicationRejected}.CanLogin())
	// A superadmin record is authoritative regardless of status.
	assert.True(t, Admin{Role: RoleSuperadmin, Status: ApplicationPending}.CanLogin())
}

func TestRegionReferenceTable(t *testing.T) {
	assert.Contains(t, StateNames(), "Jharkhand")
	assert.Contains(t, DistrictsForState("Bihar"), "Patna")
	assert.Nil(t, DistrictsForState("Atlantis"))

	assert.True(t, ValidRegion("Jharkhand", "Ranchi"))
	assert.False(t, ValidRegion("Jharkhand", "Patna"))
	assert.False(t, ValidRegion("Atlantis", "Ranchi"))
}
