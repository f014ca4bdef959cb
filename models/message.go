package models

import "time"

// Message is a direct message between two users. Only the read flag changes
// after creation.
type Message struct {
	ID         string    `json:"id" bson:"_id"`
	SenderID   string    `json:"senderId" bson:"senderId"`
	ReceiverID string    `json:"receiverId" bson:"receiverId"`
	Content    string    `json:"content" bson:"content"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	Read       bool      `json:"read" bson:"read"`
}

// Involves reports whether userID is the sender or the receiver
func (m Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// Counterpart returns the other participant of the message from userID's side
func (m Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Conversation is the latest message exchanged with one contact
type Conversation struct {
	Contact       User    `json:"contact"`
	LatestMessage Message `json:"latestMessage"`
	Unread        bool    `json:"unread"`
}
