package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxIssueImages caps the number of image references per report.
const MaxIssueImages = 5

// Issue represents a civic issue reported by a citizen. Everything but
// Status is immutable after creation; Status is advanced by admins.
type Issue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     IssueCategory      `bson:"category" json:"category"`
	ReporterName *string            `bson:"reporterName,omitempty" json:"reporterName,omitempty"`
	State        string             `bson:"state" json:"state"`
	District     string             `bson:"district" json:"district"`
	Address      string             `bson:"address" json:"address"`
	ImageURLs    []string           `bson:"imageUrls" json:"imageUrls"`
	Status       IssueStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
