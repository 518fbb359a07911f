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

const chatCollection = "chats"

// ChatRepositoryImpl implements domain.ChatRepository on the document store.
type ChatRepositoryImpl struct {
	db *mongo.Database
}

// DBChat is the document model for a chat. Participants are stored sorted so
// the pair index is unique regardless of who opened the chat.
type DBChat struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Participants  []string      `bson:"participants"`
	LastMessage   string        `bson:"last_message,omitempty"`
	LastMessageAt time.Time     `bson:"last_message_at"`
	CreatedAt     time.Time     `bson:"created_at"`
}

// NewChatRepository creates a chat repository and ensures its indexes.
func NewChatRepository(ctx context.Context, db *mongo.Database) (domain.ChatRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participants", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "last_message_at", Value: -1}},
		},
	}
	if _, err := db.Collection(chatCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &ChatRepositoryImpl{db: db}, nil
}

// Create implements domain.ChatRepository
func (r *ChatRepositoryImpl) Create(ctx context.Context, chat *domain.Chat) error {
	now := time.Now()
	chat.CreatedAt = now
	chat.LastMessageAt = now

	dbChat := &DBChat{
		Participants:  sortedPair(chat.Participants[0], chat.Participants[1]),
		LastMessageAt: chat.LastMessageAt,
		CreatedAt:     chat.CreatedAt,
	}
	result, err := r.db.Collection(chatCollection).InsertOne(ctx, dbChat)
	if err != nil {
		return err
	}
	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return errors.New("unexpected inserted ID type")
	}
	chat.ID = objectID.Hex()
	chat.Participants = [2]string{dbChat.Participants[0], dbChat.Participants[1]}
	return nil
}

// FindByID implements domain.ChatRepository
func (r *ChatRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Chat, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrChatNotFound
	}

	var dbChat DBChat
	err = r.db.Collection(chatCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbChat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}
	return dbToChat(&dbChat), nil
}

// FindByParticipants implements domain.ChatRepository
func (r *ChatRepositoryImpl) FindByParticipants(ctx context.Context, a, b string) (*domain.Chat, error) {
	var dbChat DBChat
	err := r.db.Collection(chatCollection).
		FindOne(ctx, bson.M{"participants": sortedPair(a, b)}).
		Decode(&dbChat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}
	return dbToChat(&dbChat), nil
}

// ListByUser implements domain.ChatRepository, newest activity first.
func (r *ChatRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Chat, error) {
	cursor, err := r.db.Collection(chatCollection).Find(
		ctx,
		bson.M{"participants": userID},
		options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chats []*domain.Chat
	for cursor.Next(ctx) {
		var dbChat DBChat
		if err := cursor.Decode(&dbChat); err != nil {
			return nil, err
		}
		chats = append(chats, dbToChat(&dbChat))
	}
	return chats, cursor.Err()
}

// Touch implements domain.ChatRepository
func (r *ChatRepositoryImpl) Touch(ctx context.Context, chatID, lastMessage string, at time.Time) error {
	objectID, err := bson.ObjectIDFromHex(chatID)
	if err != nil {
		return domain.ErrChatNotFound
	}
	_, err = r.db.Collection(chatCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"last_message": lastMessage, "last_message_at": at}},
	)
	return err
}

func sortedPair(a, b string) []string {
	if a > b {
		a, b = b, a
	}
	return []string{a, b}
}

func dbToChat(dbChat *DBChat) *domain.Chat {
	chat := &domain.Chat{
		ID:            dbChat.ID.Hex(),
		LastMessage:   dbChat.LastMessage,
		LastMessageAt: dbChat.LastMessageAt,
		CreatedAt:     dbChat.CreatedAt,
	}
	if len(dbChat.Participants) == 2 {
		chat.Participants = [2]string{dbChat.Participants[0], dbChat.Participants[1]}
	}
	return chat
}
