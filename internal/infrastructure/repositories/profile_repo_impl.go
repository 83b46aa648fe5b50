package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile document operations over Mongo
type ProfileRepository struct {
	col *mongo.Collection
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection("profiles")}
}

// EnsureIndexes creates the uuid lookup index and the free-text index
// over fullName and address.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "uuid", Value: 1}}},
		{Keys: bson.D{
			{Key: "fullName", Value: "text"},
			{Key: "address", Value: "text"},
		}},
	})
	return err
}

// Create inserts the profile document
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	doc := models.ProfileDocument{
		UUID:     profile.UUID.String(),
		FullName: profile.FullName,
		Email:    profile.Email,
		Address:  profile.Address,
		CP:       profile.CP,
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// GetByUUID gets a profile by its identity UUID
func (r *ProfileRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.Profile, error) {
	var doc models.ProfileDocument
	err := r.col.FindOne(ctx, bson.M{"uuid": userUUID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProfileEntity(&doc)
}

// Update applies a partial merge of the allow-listed fields. Fields
// not present in input keep their stored value; last writer wins.
func (r *ProfileRepository) Update(ctx context.Context, userUUID uuid.UUID, input *entities.UpdateProfileInput) error {
	set := bson.M{}
	if input.FullName != nil {
		set["fullName"] = *input.FullName
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.CP != nil {
		set["cp"] = *input.CP
	}
	if len(set) == 0 {
		return domainerrors.ErrInvalidInput
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"uuid": userUUID.String()}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toProfileEntity(doc *models.ProfileDocument) (*entities.Profile, error) {
	id, err := uuid.Parse(doc.UUID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	return &entities.Profile{
		UUID:     id,
		FullName: doc.FullName,
		Email:    doc.Email,
		Address:  doc.Address,
		CP:       doc.CP,
	}, nil
}
