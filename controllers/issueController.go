package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Rohitsengar02/CivicConnect/models"
	"github.com/Rohitsengar02/CivicConnect/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateIssue handles a citizen report submission. No authentication:
// reports may be anonymous, in which case reporterName is omitted.
func CreateIssue(c *gin.Context) {
	var input struct {
		Title        string   `json:"title" binding:"required,max=200"`
		Description  string   `json:"description" binding:"required,max=1000"`
		Category     string   `json:"category" binding:"required"`
		ReporterName *string  `json:"reporterName,omitempty" binding:"omitempty,max=100"`
		State        string   `json:"state" binding:"required"`
		District     string   `json:"district" binding:"required"`
		Address      string   `json:"address" binding:"required,max=200"`
		ImageURLs    []string `json:"imageUrls"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.ImageURLs) > models.MaxIssueImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images"})
		return
	}

	if !models.IssueCategory(input.Category).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	if !models.ValidRegion(input.State, input.District) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state or district"})
		return
	}

	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	// Every report enters the lifecycle at Pending; the status is
	// advanced only by admin actions afterwards.
	issue := models.Issue{
		ID:           primitive.NewObjectID(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     models.IssueCategory(input.Category),
		ReporterName: input.ReporterName,
		State:        input.State,
		District:     input.District,
		Address:      input.Address,
		ImageURLs:    imageURLs,
		Status:       models.Pending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := issueRepo.Create(ctx, &issue); err != nil {
		log.Println("Error inserting issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetIssue retrieves an issue by its ID together with the derived
// lifecycle progress fraction.
func GetIssue(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, err := issueRepo.FindByID(ctx, issueID)
	if err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           issue.ID,
		"title":        issue.Title,
		"description":  issue.Description,
		"category":     issue.Category,
		"reporterName": issue.ReporterName,
		"state":        issue.State,
		"district":     issue.District,
		"address":      issue.Address,
		"imageUrls":    issue.ImageURLs,
		"status":       issue.Status,
		"progress":     issue.Status.Progress(),
		"createdAt":    issue.CreatedAt,
		"updatedAt":    issue.UpdatedAt,
	})
}

// GetAllIssues handles retrieving issues with filtering and pagination.
func GetAllIssues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := repositories.IssueFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		State:    c.Query("state"),
		District: c.Query("district"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "newest"),
		Page:     page,
		Limit:    limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, totalCount, err := issueRepo.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": filter.Page,
	})
}

// AdvanceIssueStatus moves an issue to the next lifecycle stage. The
// write is conditional on the observed status, so two admins advancing
// concurrently cannot skip a stage.
func AdvanceIssueStatus(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, err := issueRepo.FindByID(ctx, issueID)
	if err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	next, ok := issue.Status.Next()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Issue is already resolved"})
		return
	}

	if err := issueRepo.AdvanceStatus(ctx, issueID, issue.Status, next); err != nil {
		switch err {
		case repositories.ErrStaleStatus:
			c.JSON(http.StatusConflict, gin.H{"error": "Issue status was changed by another admin"})
		case repositories.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		default:
			log.Println("Error advancing issue status:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Issue status updated successfully",
		"status":   next,
		"progress": next.Progress(),
	})
}

// SetIssueStatus performs a direct admin-chosen status write.
func SetIssueStatus(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseIssueStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := issueRepo.SetStatus(ctx, issueID, status); err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			log.Println("Error setting issue status:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Issue status updated successfully",
		"status":   status,
		"progress": status.Progress(),
	})
}

// GetIssueAnalytics returns dashboard data. A superadmin sees every
// district; a district admin's view is scoped to their own district.
func GetIssueAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scope, err := analyticsScope(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve admin district"})
		return
	}

	byCategory, err := issueRepo.CountsByCategory(ctx, scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category analytics"})
		return
	}
	issuesByCategory := make([]gin.H, 0, len(byCategory))
	for _, category := range models.Categories {
		if count, ok := byCategory[category]; ok {
			issuesByCategory = append(issuesByCategory, gin.H{"name": category, "value": count})
		}
	}

	byStatus, err := issueRepo.CountsByStatus(ctx, scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get status analytics"})
		return
	}
	issuesByStatus := make([]gin.H, 0, len(models.StatusOrder))
	var totalIssues, resolvedIssues int64
	for _, status := range models.StatusOrder {
		count := byStatus[status]
		totalIssues += count
		if status == models.Resolution {
			resolvedIssues = count
		}
		issuesByStatus = append(issuesByStatus, gin.H{"name": status, "value": count})
	}

	// Get last 7 days data
	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

		nextDate := date.AddDate(0, 0, 1)

		count, err := issueRepo.CountCreatedBetween(ctx, scope, date, nextDate)
		if err != nil {
			count = 0
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory": issuesByCategory,
		"issuesByStatus":   issuesByStatus,
		"last7Days":        last7Days,
		"totalIssues":      totalIssues,
		"resolvedIssues":   resolvedIssues,
		"openIssues":       totalIssues - resolvedIssues,
	})
}

// analyticsScope maps the authenticated admin to a region scope.
func analyticsScope(ctx context.Context, c *gin.Context) (repositories.RegionScope, error) {
	roleVal, _ := c.Get("role")
	if role, ok := roleVal.(string); ok && models.Role(role) == models.RoleSuperadmin {
		return repositories.RegionScope{}, nil
	}

	adminIDVal, _ := c.Get("admin_id")
	adminID, ok := adminIDVal.(string)
	if !ok {
		return repositories.RegionScope{}, nil
	}

	objectID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return repositories.RegionScope{}, err
	}

	admin, err := adminRepo.FindByID(ctx, objectID)
	if err != nil {
		return repositories.RegionScope{}, err
	}

	return repositories.RegionScope{State: admin.State, District: admin.District}, nil
}
