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

func newMatchService(users *MockUserRepository, requests *MockMatchRequestRepository, notifier *RecordingNotifier) *MatchService {
	return &MatchService{Users: users, Requests: requests, Notifier: notifier}
}

func TestSendMatchRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := &MockUserRepository{}
		requests := &MockMatchRequestRepository{}
		defer users.AssertExpectations(t)
		defer requests.AssertExpectations(t)

		users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice"}, nil).Once()
		users.On("GetUser", ctx, "bob").Return(&models.User{UserID: "bob"}, nil).Once()
		requests.On("CreateRequest", ctx, mock.MatchedBy(func(req models.MatchRequest) bool {
			return req.PairID == models.MatchRequestPairID("alice", "bob") &&
				req.SenderID == "alice" &&
				req.ReceiverID == "bob" &&
				req.Status == models.MatchStatusPending
		})).Return(nil).Once()

		err := newMatchService(users, requests, &RecordingNotifier{}).SendMatchRequest(ctx, "alice", "bob")
		assert.NoError(t, err)
	})

	t.Run("duplicate request", func(t *testing.T) {
		users := &MockUserRepository{}
		requests := &MockMatchRequestRepository{}

		users.On("GetUser", ctx, mock.Anything).Return(&models.User{}, nil)
		requests.On("CreateRequest", ctx, mock.Anything).Return(ErrAlreadyRequested).Once()

		err := newMatchService(users, requests, &RecordingNotifier{}).SendMatchRequest(ctx, "alice", "bob")
		assert.ErrorIs(t, err, ErrAlreadyRequested)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		users := &MockUserRepository{}
		requests := &MockMatchRequestRepository{}

		users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice"}, nil).Once()
		users.On("GetUser", ctx, "ghost").Return(nil, ErrNotFound).Once()

		err := newMatchService(users, requests, &RecordingNotifier{}).SendMatchRequest(ctx, "alice", "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		requests.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
	})

	t.Run("self request", func(t *testing.T) {
		err := newMatchService(&MockUserRepository{}, &MockMatchRequestRepository{}, &RecordingNotifier{}).
			SendMatchRequest(ctx, "alice", "alice")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRespondToRequest_Accepted(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	requests := &MockMatchRequestRepository{}
	notifier := &RecordingNotifier{}
	defer users.AssertExpectations(t)
	defer requests.AssertExpectations(t)

	receiver := &models.User{UserID: "bob", Username: "Bob", Level: 1}
	sender := &models.User{UserID: "alice", Username: "Alice", Level: 1}
	pairID := models.MatchRequestPairID("alice", "bob")

	users.On("GetUser", ctx, "bob").Return(receiver, nil).Once()
	users.On("GetUser", ctx, "alice").Return(sender, nil).Once()
	requests.On("GetRequest", ctx, pairID).Return(&models.MatchRequest{
		PairID:     pairID,
		SenderID:   "alice",
		ReceiverID: "bob",
		Status:     models.MatchStatusPending,
	}, nil).Once()
	requests.On("UpdateStatus", ctx, pairID, models.MatchStatusPending, models.MatchStatusAccepted, mock.Anything).Return(nil).Once()
	users.On("SaveUser", ctx, receiver).Return(nil).Once()
	users.On("SaveUser", ctx, sender).Return(nil).Once()

	err := newMatchService(users, requests, notifier).RespondToRequest(ctx, "bob", "alice", models.MatchStatusAccepted)
	require.NoError(t, err)

	// Matches are symmetric and both sides earned the fixed award.
	assert.True(t, receiver.HasMatch("alice"))
	assert.True(t, sender.HasMatch("bob"))
	assert.Equal(t, models.XPMatchAccepted, receiver.XP)
	assert.Equal(t, models.XPMatchAccepted, sender.XP)

	// The event goes to the original sender's topic only.
	events := notifier.EventsFor("alice")
	require.Len(t, events, 1)
	assert.Equal(t, models.EventMatchAccepted, events[0].Event)
	payload, ok := events[0].Payload.(models.MatchAcceptedEvent)
	require.True(t, ok)
	assert.Equal(t, "Bob accepted your match request.", payload.Message)
	assert.Equal(t, "bob", payload.From.UserID)
	assert.Empty(t, notifier.EventsFor("bob"))
}

func TestRespondToRequest_Rejected(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	requests := &MockMatchRequestRepository{}
	notifier := &RecordingNotifier{}

	receiver := &models.User{UserID: "bob", Level: 1}
	sender := &models.User{UserID: "alice", Level: 1}
	pairID := models.MatchRequestPairID("alice", "bob")

	users.On("GetUser", ctx, "bob").Return(receiver, nil).Once()
	users.On("GetUser", ctx, "alice").Return(sender, nil).Once()
	requests.On("GetRequest", ctx, pairID).Return(&models.MatchRequest{
		PairID:     pairID,
		SenderID:   "alice",
		ReceiverID: "bob",
		Status:     models.MatchStatusPending,
	}, nil).Once()
	requests.On("UpdateStatus", ctx, pairID, models.MatchStatusPending, models.MatchStatusRejected, mock.Anything).Return(nil).Once()

	err := newMatchService(users, requests, notifier).RespondToRequest(ctx, "bob", "alice", models.MatchStatusRejected)
	require.NoError(t, err)

	assert.False(t, receiver.HasMatch("alice"))
	assert.Zero(t, sender.XP)
	assert.Empty(t, notifier.Events())
	users.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestRespondToRequest_AlreadyResponded(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	requests := &MockMatchRequestRepository{}

	pairID := models.MatchRequestPairID("alice", "bob")
	users.On("GetUser", ctx, mock.Anything).Return(&models.User{Level: 1}, nil)
	requests.On("GetRequest", ctx, pairID).Return(&models.MatchRequest{
		PairID:     pairID,
		SenderID:   "alice",
		ReceiverID: "bob",
		Status:     models.MatchStatusAccepted,
	}, nil).Once()
	// The store rejects the pending -> accepted transition.
	requests.On("UpdateStatus", ctx, pairID, models.MatchStatusPending, models.MatchStatusAccepted, mock.Anything).
		Return(ErrNotFound).Once()

	err := newMatchService(users, requests, &RecordingNotifier{}).
		RespondToRequest(ctx, "bob", "alice", models.MatchStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRespondToRequest_InvalidAction(t *testing.T) {
	err := newMatchService(&MockUserRepository{}, &MockMatchRequestRepository{}, &RecordingNotifier{}).
		RespondToRequest(context.Background(), "bob", "alice", "maybe")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRespondToRequest_WrongDirection(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	requests := &MockMatchRequestRepository{}

	pairID := models.MatchRequestPairID("alice", "bob")
	users.On("GetUser", ctx, mock.Anything).Return(&models.User{Level: 1}, nil)
	// The pending request runs bob -> alice, so alice cannot be responded
	// to as the sender.
	requests.On("GetRequest", ctx, pairID).Return(&models.MatchRequest{
		PairID:     pairID,
		SenderID:   "bob",
		ReceiverID: "alice",
		Status:     models.MatchStatusPending,
	}, nil).Once()

	err := newMatchService(users, requests, &RecordingNotifier{}).
		RespondToRequest(ctx, "bob", "alice", models.MatchStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
	requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListReceivedRequests(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	requests := &MockMatchRequestRepository{}

	users.On("GetUser", ctx, "bob").Return(&models.User{UserID: "bob"}, nil).Once()
	requests.On("ListByReceiver", ctx, "bob", models.MatchStatusPending).Return([]models.MatchRequest{
		{SenderID: "alice", ReceiverID: "bob", Status: models.MatchStatusPending, CreatedAt: "2026-01-01T00:00:00Z"},
		{SenderID: "ghost", ReceiverID: "bob", Status: models.MatchStatusPending, CreatedAt: "2026-01-02T00:00:00Z"},
	}, nil).Once()
	users.On("GetUser", ctx, "alice").Return(&models.User{UserID: "alice", Username: "Alice", Bio: "teaches Go"}, nil).Once()
	users.On("GetUser", ctx, "ghost").Return(nil, ErrNotFound).Once()

	views, err := newMatchService(users, requests, &RecordingNotifier{}).ListReceivedRequests(ctx, "bob")
	require.NoError(t, err)

	// The removed account's stale request is skipped.
	require.Len(t, views, 1)
	assert.Equal(t, "alice", views[0].UserID)
	assert.Equal(t, "Alice", views[0].Username)
	assert.Equal(t, models.MatchStatusPending, views[0].Status)
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}

	users.On("GetUser", ctx, "alice").Return(&models.User{
		UserID:  "alice",
		Matches: []string{"bob", "carol"},
	}, nil).Once()
	users.On("GetUser", ctx, "bob").Return(&models.User{UserID: "bob", Username: "Bob"}, nil).Once()
	users.On("GetUser", ctx, "carol").Return(&models.User{UserID: "carol", Username: "Carol"}, nil).Once()

	views, err := newMatchService(users, &MockMatchRequestRepository{}, &RecordingNotifier{}).ListMatches(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, utils.DeriveRoomID("alice", "bob"), views[0].RoomID)
	assert.Equal(t, utils.DeriveRoomID("carol", "alice"), views[1].RoomID)
}
