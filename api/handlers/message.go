package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/conversations"
	"github.com/rwandapathways/pathways-api/models"
)

// Notifier delivers live events to connected users
type Notifier interface {
	Notify(userID, event string, data interface{})
}

// Message handles the signed-in user's conversations
type Message struct {
	Service  *conversations.Service
	Notifier Notifier
}

type sendRequest struct {
	Content string `json:"content"`
}

// ThreadResponse is a conversation with one contact, oldest message first
type ThreadResponse struct {
	Contact  *models.User     `json:"contact"`
	Messages []models.Message `json:"messages"`
}

// ConversationsHandler lists one entry per contact, most recent first
func (m Message) ConversationsHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	convs, err := m.Service.List(ctx, me.ID)
	if err != nil {
		writeError(w, "failed to get conversations", err)
		return
	}
	writeJSON(w, http.StatusOK, convs)
}

// ThreadHandler returns every message exchanged with contactId
func (m Message) ThreadHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())
	contactID := mux.Vars(r)["contactId"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	contact, msgs, err := m.Service.Thread(ctx, me.ID, contactID)
	if err != nil {
		writeError(w, "failed to get conversation", err)
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	writeJSON(w, http.StatusOK, ThreadResponse{Contact: contact, Messages: msgs})
}

// MarkReadHandler marks the messages received from contactId as read
func (m Message) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())
	contactID := mux.Vars(r)["contactId"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := m.Service.MarkRead(ctx, me.ID, contactID)
	if err != nil {
		writeError(w, "failed to mark conversation read", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// SendMessageHandler sends a message to receiverId and pushes it to their
// open websocket connections
func (m Message) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	me, _ := api.UserFromContext(r.Context())
	receiverID := mux.Vars(r)["receiverId"]

	var req sendRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	msg, err := m.Service.Send(ctx, me.ID, receiverID, req.Content)
	if err != nil {
		writeError(w, "failed to send message", err)
		return
	}
	if m.Notifier != nil {
		m.Notifier.Notify(msg.ReceiverID, EventNewMessage, msg)
	}
	writeJSON(w, http.StatusCreated, msg)
}
