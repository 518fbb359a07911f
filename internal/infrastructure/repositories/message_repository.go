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

const messageCollection = "messages"

// MessageRepositoryImpl implements domain.MessageRepository.
type MessageRepositoryImpl struct {
	db *mongo.Database
}

// DBMessage is the document model for a message.
type DBMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	ChatID    bson.ObjectID `bson:"chat_id"`
	SenderID  string        `bson:"sender_id"`
	Text      string        `bson:"text,omitempty"`
	MediaID   string        `bson:"media_id,omitempty"`
	CreatedAt time.Time     `bson:"created_at"`
}

// NewMessageRepository creates a message repository and ensures its indexes.
func NewMessageRepository(ctx context.Context, db *mongo.Database) (domain.MessageRepository, error) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "chat_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(messageCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &MessageRepositoryImpl{db: db}, nil
}

// Create implements domain.MessageRepository
func (r *MessageRepositoryImpl) Create(ctx context.Context, msg *domain.Message) error {
	chatID, err := bson.ObjectIDFromHex(msg.ChatID)
	if err != nil {
		return domain.ErrChatNotFound
	}
	msg.CreatedAt = time.Now()

	dbMsg := &DBMessage{
		ChatID:    chatID,
		SenderID:  msg.SenderID,
		Text:      msg.Text,
		MediaID:   msg.MediaID,
		CreatedAt: msg.CreatedAt,
	}
	result, err := r.db.Collection(messageCollection).InsertOne(ctx, dbMsg)
	if err != nil {
		return err
	}
	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return errors.New("unexpected inserted ID type")
	}
	msg.ID = objectID.Hex()
	return nil
}

// ListByChat implements domain.MessageRepository, reverse chronological.
// A zero `before` means "from now".
func (r *MessageRepositoryImpl) ListByChat(ctx context.Context, chatID string, limit int, before time.Time) ([]*domain.Message, error) {
	objectID, err := bson.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, domain.ErrChatNotFound
	}
	if limit <= 0 {
		limit = 50
	}

	filter := bson.M{"chat_id": objectID}
	if !before.IsZero() {
		filter["created_at"] = bson.M{"$lt": before}
	}

	cursor, err := r.db.Collection(messageCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*domain.Message
	for cursor.Next(ctx) {
		var dbMsg DBMessage
		if err := cursor.Decode(&dbMsg); err != nil {
			return nil, err
		}
		messages = append(messages, &domain.Message{
			ID:        dbMsg.ID.Hex(),
			ChatID:    dbMsg.ChatID.Hex(),
			SenderID:  dbMsg.SenderID,
			Text:      dbMsg.Text,
			MediaID:   dbMsg.MediaID,
			CreatedAt: dbMsg.CreatedAt,
		})
	}
	return messages, cursor.Err()
}
