package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillswap_server/models"
	"skillswap_server/utils"
)

func newChatService(users *MockUserRepository, messages *MockMessageRepository, notifier *RecordingNotifier) *ChatService {
	return &ChatService{Users: users, Messages: messages, Notifier: notifier}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := &MockUserRepository{}
		messages := &MockMessageRepository{}
		notifier := &RecordingNotifier{}
		defer messages.AssertExpectations(t)

		conversationID := utils.DeriveRoomID("alice", "bob")
		users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice", Username: "Alice"}, nil).Once()
		users.On("GetUser", ctx, "bob").Return(&models.User{UserID: "bob", Username: "Bob"}, nil).Once()
		messages.On("CreateMessage", ctx, mock.MatchedBy(func(msg models.Message) bool {
			return msg.ConversationID == conversationID &&
				msg.SenderID == "alice" &&
				msg.ReceiverID == "bob" &&
				msg.Status == models.MessageStatusSent &&
				msg.MessageID != "" &&
				msg.CreatedAt == msg.UpdatedAt
		})).Return(nil).Once()

		view, err := newChatService(users, messages, notifier).SendMessage(ctx, "alice", "bob", "hey, ready to swap?")
		require.NoError(t, err)
		assert.Equal(t, "Alice", view.Sender.Username)
		assert.Equal(t, "Bob", view.Receiver.Username)

		// The message fans out to both parties' topics.
		require.Len(t, notifier.EventsFor("alice"), 1)
		require.Len(t, notifier.EventsFor("bob"), 1)
		assert.Equal(t, models.EventReceiveMessage, notifier.EventsFor("bob")[0].Event)
	})

	t.Run("empty content", func(t *testing.T) {
		users := &MockUserRepository{}
		messages := &MockMessageRepository{}
		notifier := &RecordingNotifier{}

		_, err := newChatService(users, messages, notifier).SendMessage(ctx, "alice", "bob", "   ")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		messages.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
		assert.Empty(t, notifier.Events())
	})

	t.Run("unknown receiver", func(t *testing.T) {
		users := &MockUserRepository{}
		messages := &MockMessageRepository{}

		users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice"}, nil).Once()
		users.On("GetUser", ctx, "ghost").Return(nil, ErrNotFound).Once()

		_, err := newChatService(users, messages, &RecordingNotifier{}).SendMessage(ctx, "alice", "ghost", "hello")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMarkDelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("advances sent message", func(t *testing.T) {
		messages := &MockMessageRepository{}
		defer messages.AssertExpectations(t)

		messages.On("FindByID", ctx, "m1").Return(&models.Message{
			ConversationID: "conv",
			MessageID:      "m1",
			Status:         models.MessageStatusSent,
		}, nil).Once()
		messages.On("MarkDelivered", ctx, "conv", "m1", mock.Anything).Return(true, nil).Once()

		err := newChatService(&MockUserRepository{}, messages, &RecordingNotifier{}).MarkDelivered(ctx, "m1")
		assert.NoError(t, err)
	})

	t.Run("read message stays read", func(t *testing.T) {
		messages := &MockMessageRepository{}

		messages.On("FindByID", ctx, "m1").Return(&models.Message{
			ConversationID: "conv",
			MessageID:      "m1",
			Status:         models.MessageStatusRead,
		}, nil).Once()

		err := newChatService(&MockUserRepository{}, messages, &RecordingNotifier{}).MarkDelivered(ctx, "m1")
		assert.NoError(t, err)
		messages.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown message", func(t *testing.T) {
		messages := &MockMessageRepository{}
		messages.On("FindByID", ctx, "ghost").Return(nil, ErrNotFound).Once()

		err := newChatService(&MockUserRepository{}, messages, &RecordingNotifier{}).MarkDelivered(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMarkConversationRead(t *testing.T) {
	ctx := context.Background()
	messages := &MockMessageRepository{}
	notifier := &RecordingNotifier{}
	defer messages.AssertExpectations(t)

	conversationID := utils.DeriveRoomID("alice", "bob")
	messages.On("ListByConversation", ctx, conversationID).Return([]models.Message{
		{ConversationID: conversationID, MessageID: "m1", SenderID: "alice", ReceiverID: "bob", Status: models.MessageStatusSent},
		{ConversationID: conversationID, MessageID: "m2", SenderID: "alice", ReceiverID: "bob", Status: models.MessageStatusRead},
		{ConversationID: conversationID, MessageID: "m3", SenderID: "bob", ReceiverID: "alice", Status: models.MessageStatusSent},
		{ConversationID: conversationID, MessageID: "m4", SenderID: "alice", ReceiverID: "bob", Status: models.MessageStatusDelivered},
	}, nil).Once()
	// Only alice's unread messages advance; bob's own message and the
	// already-read one are untouched.
	messages.On("MarkRead", ctx, conversationID, "m1", mock.Anything).Return(true, nil).Once()
	messages.On("MarkRead", ctx, conversationID, "m4", mock.Anything).Return(true, nil).Once()

	err := newChatService(&MockUserRepository{}, messages, notifier).MarkConversationRead(ctx, "alice", "bob")
	require.NoError(t, err)

	events := notifier.EventsFor("alice")
	require.Len(t, events, 1)
	assert.Equal(t, models.EventMessagesRead, events[0].Event)
	assert.Equal(t, models.MessagesReadEvent{By: "bob"}, events[0].Payload)
}

func TestListConversation(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	messages := &MockMessageRepository{}

	conversationID := utils.DeriveRoomID("alice", "bob")
	users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice", Username: "Alice"}, nil).Once()
	users.On("GetUser", ctx, "bob").Return(&models.User{UserID: "bob", Username: "Bob"}, nil).Once()
	messages.On("ListByConversation", ctx, conversationID).Return([]models.Message{
		{MessageID: "m1", SenderID: "alice", ReceiverID: "bob", Content: "hi", CreatedAt: "2026-02-01T10:00:00Z"},
		{MessageID: "m2", SenderID: "bob", ReceiverID: "alice", Content: "hello", CreatedAt: "2026-02-01T10:01:00Z"},
	}, nil).Once()

	views, err := newChatService(users, messages, &RecordingNotifier{}).ListConversation(ctx, "alice", "bob")
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Sender.Username)
	assert.Equal(t, "Bob", views[0].Receiver.Username)
	assert.Equal(t, "Bob", views[1].Sender.Username)
}

func TestNotifyTyping(t *testing.T) {
	notifier := &RecordingNotifier{}
	svc := newChatService(&MockUserRepository{}, &MockMessageRepository{}, notifier)

	svc.NotifyTyping("alice", "bob")

	events := notifier.EventsFor("bob")
	require.Len(t, events, 1)
	assert.Equal(t, models.EventUserTyping, events[0].Event)
	assert.Equal(t, models.TypingEvent{From: "alice"}, events[0].Payload)
	assert.Empty(t, notifier.EventsFor("alice"))
}

func TestMessageStatusMonotonic(t *testing.T) {
	assert.Greater(t, models.MessageStatusRank(models.MessageStatusDelivered), models.MessageStatusRank(models.MessageStatusSent))
	assert.Greater(t, models.MessageStatusRank(models.MessageStatusRead), models.MessageStatusRank(models.MessageStatusDelivered))
}
