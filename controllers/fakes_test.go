package controllers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Rohitsengar02/CivicConnect/models"
	"github.com/Rohitsengar02/CivicConnect/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository doubles. ClaimDistrict and the conditional
// updates hold the mutex across check and write, matching the atomicity
// the Mongo implementations get from unique indexes and conditional
// filters.

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[primitive.ObjectID]models.Admin
	claims map[string]models.DistrictClaim
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		admins: make(map[primitive.ObjectID]models.Admin),
		claims: make(map[string]models.DistrictClaim),
	}
}

func (f *fakeAdminRepo) ClaimDistrict(_ context.Context, claim models.DistrictClaim) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.claims[claim.Key]; exists {
		return repositories.ErrDistrictTaken
	}
	f.claims[claim.Key] = claim
	return nil
}

func (f *fakeAdminRepo) ReleaseDistrict(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claims, key)
	return nil
}

func (f *fakeAdminRepo) DistrictTaken(_ context.Context, state, district string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, exists := f.claims[models.DistrictKey(state, district)]
	return exists, nil
}

func (f *fakeAdminRepo) CreateAdmin(_ context.Context, admin *models.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.admins {
		if strings.EqualFold(existing.Email, admin.Email) {
			return repositories.ErrEmailTaken
		}
	}
	f.admins[admin.ID] = *admin
	return nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, admin := range f.admins {
		if admin.Email == email {
			copied := admin
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := admin
	return &copied, nil
}

func (f *fakeAdminRepo) ListApplications(_ context.Context) ([]models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admins := make([]models.Admin, 0, len(f.admins))
	for _, admin := range f.admins {
		admins = append(admins, admin)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].Email < admins[j].Email })
	return admins, nil
}

func (f *fakeAdminRepo) DecideApplication(_ context.Context, id primitive.ObjectID, decision models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if admin.Status != models.ApplicationPending {
		return repositories.ErrAlreadyDecided
	}
	admin.Status = decision
	f.admins[id] = admin
	return nil
}

type fakeIssueRepo struct {
	mu     sync.Mutex
	issues map[primitive.ObjectID]models.Issue
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: make(map[primitive.ObjectID]models.Issue)}
}

func (f *fakeIssueRepo) Create(_ context.Context, issue *models.Issue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issues[issue.ID] = *issue
	return nil
}

func (f *fakeIssueRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	issue, ok := f.issues[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := issue
	return &copied, nil
}

func (f *fakeIssueRepo) List(_ context.Context, filter repositories.IssueFilter) ([]models.Issue, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Issue
	for _, issue := range f.issues {
		if filter.Category != "" && filter.Category != "all" && string(issue.Category) != filter.Category {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(issue.Status) != filter.Status {
			continue
		}
		if filter.State != "" && issue.State != filter.State {
			continue
		}
		if filter.District != "" && issue.District != filter.District {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(issue.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(issue.Description), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, issue)
	}

	sort.Slice(matched, func(i, j int) bool {
		if filter.Sort == "oldest" {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeIssueRepo) AdvanceStatus(_ context.Context, id primitive.ObjectID, from, to models.IssueStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	issue, ok := f.issues[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if issue.Status != from {
		return repositories.ErrStaleStatus
	}
	issue.Status = to
	issue.UpdatedAt = time.Now()
	f.issues[id] = issue
	return nil
}

func (f *fakeIssueRepo) SetStatus(_ context.Context, id primitive.ObjectID, status models.IssueStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	issue, ok := f.issues[id]
	if !ok {
		return repositories.ErrNotFound
	}
	issue.Status = status
	issue.UpdatedAt = time.Now()
	f.issues[id] = issue
	return nil
}

func (f *fakeIssueRepo) inScope(issue models.Issue, scope repositories.RegionScope) bool {
	if scope.State != "" && issue.State != scope.State {
		return false
	}
	if scope.District != "" && issue.District != scope.District {
		return false
	}
	return true
}

func (f *fakeIssueRepo) CountsByCategory(_ context.Context, scope repositories.RegionScope) (map[models.IssueCategory]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[models.IssueCategory]int64)
	for _, issue := range f.issues {
		if f.inScope(issue, scope) {
			counts[issue.Category]++
		}
	}
	return counts, nil
}

func (f *fakeIssueRepo) CountsByStatus(_ context.Context, scope repositories.RegionScope) (map[models.IssueStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[models.IssueStatus]int64)
	for _, issue := range f.issues {
		if f.inScope(issue, scope) {
			counts[issue.Status]++
		}
	}
	return counts, nil
}

func (f *fakeIssueRepo) CountCreatedBetween(_ context.Context, scope repositories.RegionScope, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, issue := range f.issues {
		if f.inScope(issue, scope) && !issue.CreatedAt.Before(from) && issue.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}
