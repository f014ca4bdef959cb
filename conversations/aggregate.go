// Package conversations groups a user's direct messages by counterpart and
// implements the messaging operations built on top of that view.
package conversations

import (
	"sort"

	"github.com/samber/lo"

	"github.com/rwandapathways/pathways-api/models"
)

// Aggregate returns one conversation per distinct counterpart of userID,
// holding the latest message exchanged with them. Entries are sorted newest
// first; equal timestamps keep the order in which the counterpart first
// appeared in msgs. Counterparts missing from contacts are dropped.
func Aggregate(userID string, msgs []models.Message, contacts map[string]models.User) []models.Conversation {
	latest := map[string]models.Message{}
	var order []string

	for _, m := range msgs {
		if !m.Involves(userID) {
			continue
		}
		other := m.Counterpart(userID)
		cur, seen := latest[other]
		if !seen {
			order = append(order, other)
			latest[other] = m
			continue
		}
		// strictly newer only, so the first of equal timestamps wins
		if m.Timestamp.After(cur.Timestamp) {
			latest[other] = m
		}
	}

	out := make([]models.Conversation, 0, len(order))
	for _, id := range order {
		contact, ok := contacts[id]
		if !ok {
			continue
		}
		m := latest[id]
		out = append(out, models.Conversation{
			Contact:       contact,
			LatestMessage: m,
			Unread:        !m.Read && m.ReceiverID == userID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LatestMessage.Timestamp.After(out[j].LatestMessage.Timestamp)
	})
	return out
}

// CounterpartIDs lists the distinct counterparts of userID in order of first appearance
func CounterpartIDs(userID string, msgs []models.Message) []string {
	involved := lo.Filter(msgs, func(m models.Message, _ int) bool { return m.Involves(userID) })
	return lo.Uniq(lo.Map(involved, func(m models.Message, _ int) string { return m.Counterpart(userID) }))
}

// Thread returns the messages exchanged between userID and contactID, oldest first
func Thread(userID, contactID string, msgs []models.Message) []models.Message {
	out := lo.Filter(msgs, func(m models.Message, _ int) bool {
		return m.Involves(userID) && m.Counterpart(userID) == contactID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
