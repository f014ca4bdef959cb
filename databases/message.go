package databases

// go generate: mockery --name MessageDatabase

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rwandapathways/pathways-api/models"
)

const messageName = "messages"

// MessageDatabase contains the methods to use with the message collection.
// Messages are immutable apart from the read flag.
type MessageDatabase interface {
	FindOne(ctx context.Context, id string) (*models.Message, error)
	Find(ctx context.Context) ([]models.Message, error)
	FindByUser(ctx context.Context, userID string) ([]models.Message, error)
	Filter(ctx context.Context, match func(models.Message) bool) ([]models.Message, error)
	InsertOne(ctx context.Context, msg models.Message) (*models.Message, error)
	MarkRead(ctx context.Context, senderID, receiverID string) (int64, error)
}

type messageDatabase struct {
	db DatabaseHelper
}

// NewMessageDatabase initializes a new instance of message database with the provided db connection
func NewMessageDatabase(db DatabaseHelper) MessageDatabase {
	return &messageDatabase{
		db: db,
	}
}

func (c *messageDatabase) FindOne(ctx context.Context, id string) (*models.Message, error) {
	msg := &models.Message{}
	err := c.db.Collection(messageName).FindOne(ctx, bson.M{"_id": id}).Decode(msg)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (c *messageDatabase) Find(ctx context.Context) ([]models.Message, error) {
	return c.find(ctx, bson.M{})
}

func (c *messageDatabase) FindByUser(ctx context.Context, userID string) ([]models.Message, error) {
	return c.find(ctx, bson.M{"$or": []bson.M{
		{"senderId": userID},
		{"receiverId": userID},
	}})
}

func (c *messageDatabase) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	var msgs []models.Message
	err := c.db.Collection(messageName).Find(ctx, filter).Decode(&msgs)
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *messageDatabase) Filter(ctx context.Context, match func(models.Message) bool) ([]models.Message, error) {
	msgs, err := c.Find(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(msgs, func(m models.Message, _ int) bool { return match(m) }), nil
}

func (c *messageDatabase) InsertOne(ctx context.Context, msg models.Message) (*models.Message, error) {
	msg.ID = uuid.New().String()
	if _, err := c.db.Collection(messageName).InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	return &msg, nil
}

func (c *messageDatabase) MarkRead(ctx context.Context, senderID, receiverID string) (int64, error) {
	n, err := c.db.Collection(messageName).UpdateMany(ctx,
		bson.M{"senderId": senderID, "receiverId": receiverID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return n, nil
}

type memoryMessageDatabase struct {
	s *MemoryStore
}

// NewMemoryMessageDatabase serves messages out of the in-memory store
func NewMemoryMessageDatabase(s *MemoryStore) MessageDatabase {
	return &memoryMessageDatabase{s: s}
}

func (m *memoryMessageDatabase) FindOne(ctx context.Context, id string) (*models.Message, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	msg, ok := lo.Find(m.s.messages, func(msg models.Message) bool { return msg.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &msg, nil
}

func (m *memoryMessageDatabase) Find(ctx context.Context) ([]models.Message, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return slices.Clone(m.s.messages), nil
}

func (m *memoryMessageDatabase) FindByUser(ctx context.Context, userID string) ([]models.Message, error) {
	return m.Filter(ctx, func(msg models.Message) bool { return msg.Involves(userID) })
}

func (m *memoryMessageDatabase) Filter(ctx context.Context, match func(models.Message) bool) ([]models.Message, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := lo.Filter(m.s.messages, func(msg models.Message, _ int) bool { return match(msg) })
	if out == nil {
		out = []models.Message{}
	}
	return out, nil
}

func (m *memoryMessageDatabase) InsertOne(ctx context.Context, msg models.Message) (*models.Message, error) {
	if err := m.s.wait(ctx, sendDelay); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	msg.ID = m.s.newID()
	m.s.messages = append(m.s.messages, msg)
	return &msg, nil
}

func (m *memoryMessageDatabase) MarkRead(ctx context.Context, senderID, receiverID string) (int64, error) {
	if err := m.s.wait(ctx, writeDelay); err != nil {
		return 0, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for i := range m.s.messages {
		msg := &m.s.messages[i]
		if msg.SenderID == senderID && msg.ReceiverID == receiverID && !msg.Read {
			msg.Read = true
			n++
		}
	}
	return n, nil
}
