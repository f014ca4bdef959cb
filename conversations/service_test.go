package conversations_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rwandapathways/pathways-api/conversations"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/databases/mocks"
	"github.com/rwandapathways/pathways-api/models"
)

var sentAt = time.Date(2023, time.April, 2, 9, 0, 0, 0, time.UTC)

func newService() *conversations.Service {
	store := databases.NewMemoryStore(0).Seed()
	svc := conversations.NewService(databases.NewMemoryMessageDatabase(store), databases.NewMemoryUserDatabase(store))
	svc.Now = func() time.Time { return sentAt }
	return svc
}

func TestService_List(t *testing.T) {
	svc := newService()

	convs, err := svc.List(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "3", convs[0].Contact.ID)
	assert.Equal(t, "3", convs[0].LatestMessage.ID)
	assert.False(t, convs[0].Unread, "latest message was sent by the student")

	convs, err = svc.List(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "2", convs[0].Contact.ID)
	assert.True(t, convs[0].Unread)
}

func TestService_ListSkipsUnknownContacts(t *testing.T) {
	msgDB := &mocks.MessageDatabase{}
	userDB := &mocks.UserDatabase{}

	msgDB.On("FindByUser", mock.Anything, "2").Return([]models.Message{
		{ID: "1", SenderID: "2", ReceiverID: "3", Timestamp: sentAt},
		{ID: "2", SenderID: "gone", ReceiverID: "2", Timestamp: sentAt.Add(time.Hour)},
	}, nil)
	known := []models.User{{ID: "2"}, {ID: "3"}, {ID: "4"}}
	userDB.On("Filter", mock.Anything, mock.Anything).Return(func(_ context.Context, match func(models.User) bool) []models.User {
		return lo.Filter(known, func(u models.User, _ int) bool { return match(u) })
	}, nil).Once()

	convs, err := conversations.NewService(msgDB, userDB).List(context.Background(), "2")

	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "3", convs[0].Contact.ID)
	userDB.AssertExpectations(t)
	userDB.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestService_ListStoreFailure(t *testing.T) {
	msgDB := &mocks.MessageDatabase{}
	userDB := &mocks.UserDatabase{}

	msgDB.On("FindByUser", mock.Anything, "2").Return([]models.Message{
		{ID: "1", SenderID: "2", ReceiverID: "3", Timestamp: sentAt},
	}, nil)
	userDB.On("Filter", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	_, err := conversations.NewService(msgDB, userDB).List(context.Background(), "2")

	assert.EqualError(t, err, "failed to get contacts: mocked-error")
}

func TestService_ListManyContactsWithLatency(t *testing.T) {
	store := databases.NewMemoryStore(0.05).Seed()
	users := databases.NewMemoryUserDatabase(store)
	msgs := databases.NewMemoryMessageDatabase(store)
	ctx := context.Background()

	// 40 students each write to counselor 3; a lookup per contact would
	// cost 40 simulated reads
	for i := 0; i < 40; i++ {
		student, err := users.InsertOne(ctx, models.User{
			Email: fmt.Sprintf("student%d@example.com", i),
			Name:  fmt.Sprintf("Student %d", i),
			Role:  models.RoleStudent,
		})
		require.NoError(t, err)
		_, err = msgs.InsertOne(ctx, models.Message{
			SenderID:   student.ID,
			ReceiverID: "3",
			Content:    "Hello",
			Timestamp:  sentAt.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	svc := conversations.NewService(msgs, users)
	qctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	convs, err := svc.List(qctx, "3")
	require.NoError(t, err)
	assert.Len(t, convs, 41)
	assert.Equal(t, "Student 39", convs[0].Contact.Name)
}

func TestService_Thread(t *testing.T) {
	svc := newService()

	contact, msgs, err := svc.Thread(context.Background(), "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alice Mutoni", contact.Name)
	require.Len(t, msgs, 3)
	assert.Equal(t, "1", msgs[0].ID)
	assert.Equal(t, "3", msgs[2].ID)

	_, _, err = svc.Thread(context.Background(), "2", "404")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestService_Send(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	msg, err := svc.Send(ctx, "2", "4", "  Hello Emmanuel  ")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Hello Emmanuel", msg.Content)
	assert.Equal(t, sentAt, msg.Timestamp)
	assert.False(t, msg.Read)

	convs, err := svc.List(ctx, "2")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "4", convs[0].Contact.ID)
}

func TestService_SendValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Send(ctx, "2", "3", " \n ")
	assert.ErrorIs(t, err, conversations.ErrEmptyContent)

	_, err = svc.Send(ctx, "2", "2", "hi me")
	assert.ErrorIs(t, err, conversations.ErrSelfMessage)

	_, err = svc.Send(ctx, "2", "404", "hello?")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestService_MarkRead(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	n, err := svc.MarkRead(ctx, "3", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	convs, err := svc.List(ctx, "3")
	require.NoError(t, err)
	assert.False(t, convs[0].Unread)
}
