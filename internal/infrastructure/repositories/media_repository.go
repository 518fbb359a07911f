package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/MEDWEDU/Lettera/domain"
)

const mediaCollection = "media"

// MediaRepositoryImpl implements domain.MediaRepository.
type MediaRepositoryImpl struct {
	db *mongo.Database
}

// DBMedia is the document model for media metadata.
type DBMedia struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	OwnerID     string        `bson:"owner_id"`
	Filename    string        `bson:"filename"`
	ContentType string        `bson:"content_type"`
	Size        int64         `bson:"size"`
	StorageKey  string        `bson:"storage_key"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// NewMediaRepository creates a media metadata repository.
func NewMediaRepository(db *mongo.Database) domain.MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

// Create implements domain.MediaRepository
func (r *MediaRepositoryImpl) Create(ctx context.Context, media *domain.Media) error {
	media.CreatedAt = time.Now()
	dbMedia := &DBMedia{
		OwnerID:     media.OwnerID,
		Filename:    media.Filename,
		ContentType: media.ContentType,
		Size:        media.Size,
		StorageKey:  media.StorageKey,
		CreatedAt:   media.CreatedAt,
	}
	result, err := r.db.Collection(mediaCollection).InsertOne(ctx, dbMedia)
	if err != nil {
		return err
	}
	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return errors.New("unexpected inserted ID type")
	}
	media.ID = objectID.Hex()
	return nil
}

// FindByID implements domain.MediaRepository
func (r *MediaRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Media, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMediaNotFound
	}

	var dbMedia DBMedia
	err = r.db.Collection(mediaCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbMedia)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, err
	}
	return &domain.Media{
		ID:          dbMedia.ID.Hex(),
		OwnerID:     dbMedia.OwnerID,
		Filename:    dbMedia.Filename,
		ContentType: dbMedia.ContentType,
		Size:        dbMedia.Size,
		StorageKey:  dbMedia.StorageKey,
		CreatedAt:   dbMedia.CreatedAt,
	}, nil
}

// Delete implements domain.MediaRepository
func (r *MediaRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMediaNotFound
	}
	result, err := r.db.Collection(mediaCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}
