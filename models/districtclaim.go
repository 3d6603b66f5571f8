package models

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DistrictClaim reserves a (state, district) pair for a single admin.
// Its _id is the normalized DistrictKey, so inserting the claim is an
// atomic create-if-absent: a duplicate key error means the district is
// already taken. No check-then-write race.
type DistrictClaim struct {
	Key       string             `bson:"_id" json:"key"`
	State     string             `bson:"state" json:"state"`
	District  string             `bson:"district" json:"district"`
	AdminID   primitive.ObjectID `bson:"adminId" json:"adminId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// DistrictKey normalizes a (state, district) pair into the claim id,
// e.g. ("Jharkhand", "Ranchi") -> "jharkhand-ranchi".
func DistrictKey(state, district string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(s)), "-"))
	}
	return norm(state) + "-" + norm(district)
}

// NewDistrictClaim builds the claim document for a registering admin.
func NewDistrictClaim(state, district string, adminID primitive.ObjectID) DistrictClaim {
	return DistrictClaim{
		Key:       DistrictKey(state, district),
		State:     state,
		District:  district,
		AdminID:   adminID,
		CreatedAt: time.Now(),
	}
}

// EnsureAdminIndexes creates the unique email index on the admins
// collection. District uniqueness is NOT indexed here: rejected
// applications keep their state/district fields while releasing the
// district for new applicants, so the claims collection is the sole
// enforcer of one-admin-per-district.
func EnsureAdminIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
