package repositories

import (
	"context"

	"github.com/Rohitsengar02/CivicConnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAdminRepository implements AdminRepository on the admins and
// districtClaims collections.
type MongoAdminRepository struct {
	admins *mongo.Collection
	claims *mongo.Collection
}

func NewMongoAdminRepository(admins, claims *mongo.Collection) *MongoAdminRepository {
	return &MongoAdminRepository{admins: admins, claims: claims}
}

func (r *MongoAdminRepository) ClaimDistrict(ctx context.Context, claim models.DistrictClaim) error {
	_, err := r.claims.InsertOne(ctx, claim)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDistrictTaken
	}
	return err
}

func (r *MongoAdminRepository) ReleaseDistrict(ctx context.Context, key string) error {
	_, err := r.claims.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (r *MongoAdminRepository) DistrictTaken(ctx context.Context, state, district string) (bool, error) {
	count, err := r.claims.CountDocuments(ctx, bson.M{"_id": models.DistrictKey(state, district)})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	_, err := r.admins.InsertOne(ctx, admin)
	// The email index is the only unique secondary index on admins
	// (see models.EnsureAdminIndexes), so a duplicate key here can
	// only mean the email.
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.admins.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) ListApplications(ctx context.Context) ([]models.Admin, error) {
	cursor, err := r.admins.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoAdminRepository) DecideApplication(ctx context.Context, id primitive.ObjectID, decision models.ApplicationStatus) error {
	result, err := r.admins.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ApplicationPending},
		bson.M{"$set": bson.M{"status": decision}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		count, countErr := r.admins.CountDocuments(ctx, bson.M{"_id": id})
		if countErr == nil && count == 0 {
			return ErrNotFound
		}
		return ErrAlreadyDecided
	}
	return nil
}
