package conversations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
)

var (
	// ErrEmptyContent is returned when a message has nothing but whitespace
	ErrEmptyContent = errors.New("message content is required")
	// ErrSelfMessage is returned when sender and receiver are the same user
	ErrSelfMessage = errors.New("cannot send a message to yourself")
)

// Service reads and writes a user's messages
type Service struct {
	Messages databases.MessageDatabase
	Users    databases.UserDatabase
	Now      func() time.Time
}

// NewService returns a Service backed by the given repositories
func NewService(msgs databases.MessageDatabase, users databases.UserDatabase) *Service {
	return &Service{
		Messages: msgs,
		Users:    users,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// List returns the conversation overview of userID. Contacts that can no
// longer be resolved are left out.
func (s *Service) List(ctx context.Context, userID string) ([]models.Conversation, error) {
	msgs, err := s.Messages.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	ids := CounterpartIDs(userID, msgs)
	if len(ids) == 0 {
		return []models.Conversation{}, nil
	}
	want := lo.SliceToMap(ids, func(id string) (string, struct{}) { return id, struct{}{} })

	// a single round trip covers all contacts
	users, err := s.Users.Filter(ctx, func(u models.User) bool {
		_, ok := want[u.ID]
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	contacts := lo.KeyBy(users, func(u models.User) string { return u.ID })
	for _, id := range ids {
		if _, ok := contacts[id]; !ok {
			zap.S().Warnw("dropping conversation with unknown contact", "userID", userID, "contactID", id)
		}
	}

	return Aggregate(userID, msgs, contacts), nil
}

// Thread returns the contact and every message exchanged with them, oldest first
func (s *Service) Thread(ctx context.Context, userID, contactID string) (*models.User, []models.Message, error) {
	contact, err := s.Users.FindOne(ctx, contactID)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := s.Messages.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return contact, Thread(userID, contactID, msgs), nil
}

// Send stores a new unread message from senderID to receiverID
func (s *Service) Send(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	if _, err := s.Users.FindOne(ctx, receiverID); err != nil {
		return nil, err
	}

	msg, err := s.Messages.InsertOne(ctx, models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	zap.S().Debugw("message sent", "id", msg.ID, "senderID", senderID, "receiverID", receiverID)
	return msg, nil
}

// MarkRead marks every message from contactID to userID as read and returns
// how many changed
func (s *Service) MarkRead(ctx context.Context, userID, contactID string) (int64, error) {
	n, err := s.Messages.MarkRead(ctx, contactID, userID)
	if err != nil {
		return 0, err
	}
	return n, nil
}
