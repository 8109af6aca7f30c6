package services

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"skillswap_server/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockMatchRequestRepository struct {
	mock.Mock
}

func (m *MockMatchRequestRepository) CreateRequest(ctx context.Context, req models.MatchRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMatchRequestRepository) GetRequest(ctx context.Context, pairID string) (*models.MatchRequest, error) {
	args := m.Called(ctx, pairID)
	if req, ok := args.Get(0).(*models.MatchRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchRequestRepository) UpdateStatus(ctx context.Context, pairID, fromStatus, toStatus, respondedAt string) error {
	args := m.Called(ctx, pairID, fromStatus, toStatus, respondedAt)
	return args.Error(0)
}

func (m *MockMatchRequestRepository) ListByReceiver(ctx context.Context, receiverID, status string) ([]models.MatchRequest, error) {
	args := m.Called(ctx, receiverID, status)
	return args.Get(0).([]models.MatchRequest), args.Error(1)
}

func (m *MockMatchRequestRepository) ListBySender(ctx context.Context, senderID, status string) ([]models.MatchRequest, error) {
	args := m.Called(ctx, senderID, status)
	return args.Get(0).([]models.MatchRequest), args.Error(1)
}

type MockSessionRequestRepository struct {
	mock.Mock
}

func (m *MockSessionRequestRepository) CreateRequest(ctx context.Context, req models.SessionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockSessionRequestRepository) ListByReceiver(ctx context.Context, receiverID string) ([]models.SessionRequest, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).([]models.SessionRequest), args.Error(1)
}

func (m *MockSessionRequestRepository) DeleteRequest(ctx context.Context, receiverID, roomID string) error {
	args := m.Called(ctx, receiverID, roomID)
	return args.Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateMessage(ctx context.Context, msg models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	args := m.Called(ctx, conversationID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, messageID string) (*models.Message, error) {
	args := m.Called(ctx, messageID)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageRepository) MarkDelivered(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error) {
	args := m.Called(ctx, conversationID, messageID, updatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error) {
	args := m.Called(ctx, conversationID, messageID, updatedAt)
	return args.Bool(0), args.Error(1)
}

// PublishedEvent is one event captured by RecordingNotifier.
type PublishedEvent struct {
	UserID  string
	Event   string
	Payload interface{}
}

// RecordingNotifier is an in-memory Notifier that records every publish, in
// order, for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []PublishedEvent
}

func (n *RecordingNotifier) Publish(userID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, PublishedEvent{UserID: userID, Event: event, Payload: payload})
}

// Events returns a copy of everything published so far.
func (n *RecordingNotifier) Events() []PublishedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]PublishedEvent(nil), n.events...)
}

// EventsFor returns the events published to one user's topic, in order.
func (n *RecordingNotifier) EventsFor(userID string) []PublishedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []PublishedEvent
	for _, e := range n.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}
