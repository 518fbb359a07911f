package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MEDWEDU/Lettera/domain"
)

const userCollection = "users"

// UserRepositoryImpl implements domain.UserRepository on the document store.
type UserRepositoryImpl struct {
	db *mongo.Database
}

// DBUser is the document model for a user. Email is stored lowercased; the
// unique index makes duplicate registration a first-class write conflict.
type DBUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Verified     bool          `bson:"verified"`
	FirstName    string        `bson:"first_name"`
	LastName     string        `bson:"last_name"`
	Position     string        `bson:"position,omitempty"`
	Company      string        `bson:"company,omitempty"`
	Category     string        `bson:"category,omitempty"`
	Skills       []string      `bson:"skills,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// NewUserRepository creates a user repository and ensures its indexes.
func NewUserRepository(ctx context.Context, db *mongo.Database) (domain.UserRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(userCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &UserRepositoryImpl{db: db}, nil
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = strings.ToLower(user.Email)

	dbUser := r.domainToDB(user)
	result, err := r.db.Collection(userCollection).InsertOne(ctx, dbUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return err
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return errors.New("unexpected inserted ID type")
	}
	user.ID = objectID.Hex()
	return nil
}

// FindByEmail implements domain.UserRepository. Lookup is case-insensitive.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	objectID, err := bson.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"position":   user.Position,
		"company":    user.Company,
		"category":   user.Category,
		"skills":     user.Skills,
		"updated_at": user.UpdatedAt,
	}}
	result, err := r.db.Collection(userCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// MarkVerified implements domain.UserRepository. The flag flips once and
// never reverts.
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"verified": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Search implements domain.UserRepository with a case-insensitive substring
// match across name, email and company.
func (r *UserRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := bson.M{"$regex": regexQuote(query), "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"first_name": pattern},
		{"last_name": pattern},
		{"email": pattern},
		{"company": pattern},
	}}

	cursor, err := r.db.Collection(userCollection).Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var dbUser DBUser
		if err := cursor.Decode(&dbUser); err != nil {
			return nil, err
		}
		users = append(users, r.dbToDomain(&dbUser))
	}
	return users, cursor.Err()
}

// regexQuote escapes regex metacharacters so user input is matched literally.
func regexQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// domainToDB converts a domain user to its document model
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Verified:     user.Verified,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Position:     user.Position,
		Company:      user.Company,
		Category:     user.Category,
		Skills:       user.Skills,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.ID != "" {
		if objectID, err := bson.ObjectIDFromHex(user.ID); err == nil {
			dbUser.ID = objectID
		}
	}
	return dbUser
}

// dbToDomain converts a document model to a domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID.Hex(),
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Verified:     dbUser.Verified,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Position:     dbUser.Position,
		Company:      dbUser.Company,
		Category:     dbUser.Category,
		Skills:       dbUser.Skills,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
