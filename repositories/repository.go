package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Rohitsengar02/CivicConnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors controllers branch on when mapping storage failures
// to HTTP responses.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDistrictTaken  = errors.New("district already has an admin")
	ErrEmailTaken     = errors.New("email already registered")
	ErrAlreadyDecided = errors.New("application already decided")
	ErrStaleStatus    = errors.New("issue status changed concurrently")
)

// IssueFilter narrows and pages an issue listing.
type IssueFilter struct {
	Category string
	Status   string
	State    string
	District string
	Search   string
	Sort     string // "newest" (default) or "oldest"
	Page     int
	Limit    int
}

// RegionScope restricts analytics queries to one district. The zero
// value means all districts (superadmin view).
type RegionScope struct {
	State    string
	District string
}

// IssueRepository is the storage surface for citizen reports.
type IssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]models.Issue, int64, error)

	// AdvanceStatus moves an issue from the observed status to the
	// given next one as a single conditional write; ErrStaleStatus
	// when another admin got there first.
	AdvanceStatus(ctx context.Context, id primitive.ObjectID, from, to models.IssueStatus) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.IssueStatus) error

	CountsByCategory(ctx context.Context, scope RegionScope) (map[models.IssueCategory]int64, error)
	CountsByStatus(ctx context.Context, scope RegionScope) (map[models.IssueStatus]int64, error)
	CountCreatedBetween(ctx context.Context, scope RegionScope, from, to time.Time) (int64, error)
}

// AdminRepository is the storage surface for admin applications and
// the district uniqueness claims backing them.
type AdminRepository interface {
	// ClaimDistrict atomically reserves a (state, district) pair;
	// ErrDistrictTaken when the claim already exists.
	ClaimDistrict(ctx context.Context, claim models.DistrictClaim) error
	ReleaseDistrict(ctx context.Context, key string) error
	DistrictTaken(ctx context.Context, state, district string) (bool, error)

	CreateAdmin(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)

	ListApplications(ctx context.Context) ([]models.Admin, error)
	// DecideApplication finalizes a pending application; decisions are
	// terminal, deciding twice yields ErrAlreadyDecided.
	DecideApplication(ctx context.Context, id primitive.ObjectID, decision models.ApplicationStatus) error
}
