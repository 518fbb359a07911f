package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MEDWEDU/Lettera/domain"
)

const searchCollection = "search_history"

// SearchRepositoryImpl implements domain.SearchRepository.
type SearchRepositoryImpl struct {
	db *mongo.Database
}

// DBSearchEntry is the document model for a search history entry.
type DBSearchEntry struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Query     string        `bson:"query"`
	CreatedAt time.Time     `bson:"created_at"`
}

// NewSearchRepository creates a search history repository and ensures its
// indexes.
func NewSearchRepository(ctx context.Context, db *mongo.Database) (domain.SearchRepository, error) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(searchCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &SearchRepositoryImpl{db: db}, nil
}

// Append implements domain.SearchRepository
func (r *SearchRepositoryImpl) Append(ctx context.Context, entry *domain.SearchEntry) error {
	entry.CreatedAt = time.Now()
	dbEntry := &DBSearchEntry{
		UserID:    entry.UserID,
		Query:     entry.Query,
		CreatedAt: entry.CreatedAt,
	}
	result, err := r.db.Collection(searchCollection).InsertOne(ctx, dbEntry)
	if err != nil {
		return err
	}
	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		entry.ID = objectID.Hex()
	}
	return nil
}

// LastByUser implements domain.SearchRepository. Returns nil when the user
// has no history.
func (r *SearchRepositoryImpl) LastByUser(ctx context.Context, userID string) (*domain.SearchEntry, error) {
	var dbEntry DBSearchEntry
	err := r.db.Collection(searchCollection).
		FindOne(ctx, bson.M{"user_id": userID}, options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).
		Decode(&dbEntry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return dbToSearchEntry(&dbEntry), nil
}

// ListByUser implements domain.SearchRepository, most recent first.
func (r *SearchRepositoryImpl) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	cursor, err := r.db.Collection(searchCollection).Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*domain.SearchEntry
	for cursor.Next(ctx) {
		var dbEntry DBSearchEntry
		if err := cursor.Decode(&dbEntry); err != nil {
			return nil, err
		}
		entries = append(entries, dbToSearchEntry(&dbEntry))
	}
	return entries, cursor.Err()
}

// ClearByUser implements domain.SearchRepository. Clearing an empty history
// is not an error.
func (r *SearchRepositoryImpl) ClearByUser(ctx context.Context, userID string) error {
	_, err := r.db.Collection(searchCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func dbToSearchEntry(dbEntry *DBSearchEntry) *domain.SearchEntry {
	return &domain.SearchEntry{
		ID:        dbEntry.ID.Hex(),
		UserID:    dbEntry.UserID,
		Query:     dbEntry.Query,
		CreatedAt: dbEntry.CreatedAt,
	}
}
