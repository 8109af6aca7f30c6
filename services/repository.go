package services

import (
	"context"

	"skillswap_server/models"
)

// UserRepository is keyed access to user records. Engines read-modify-write
// through it; there is no cross-step locking on user records.
type UserRepository interface {
	// GetUser returns ErrNotFound when no record exists for the id.
	GetUser(ctx context.Context, userID string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

// MatchRequestRepository stores one record per user pair.
type MatchRequestRepository interface {
	// CreateRequest inserts the request atomically, returning
	// ErrAlreadyRequested when a pending or accepted record already exists
	// for the pair. A rejected record is overwritten by a fresh request.
	CreateRequest(ctx context.Context, req models.MatchRequest) error
	// GetRequest returns ErrNotFound when no record exists for the pair.
	GetRequest(ctx context.Context, pairID string) (*models.MatchRequest, error)
	// UpdateStatus moves the pair's record from one status to another
	// atomically. Returns ErrNotFound when the record is not currently in
	// fromStatus, so terminal states can never be transitioned out of.
	UpdateStatus(ctx context.Context, pairID, fromStatus, toStatus, respondedAt string) error
	// ListByReceiver returns requests addressed to the user, optionally
	// restricted to one status.
	ListByReceiver(ctx context.Context, receiverID, status string) ([]models.MatchRequest, error)
	// ListBySender returns requests the user sent, optionally restricted to
	// one status.
	ListBySender(ctx context.Context, senderID, status string) ([]models.MatchRequest, error)
}

// SessionRequestRepository stores incoming session requests per receiver.
type SessionRequestRepository interface {
	// CreateRequest inserts the request atomically, returning
	// ErrAlreadyRequested when the receiver already holds a request for the
	// same room.
	CreateRequest(ctx context.Context, req models.SessionRequest) error
	ListByReceiver(ctx context.Context, receiverID string) ([]models.SessionRequest, error)
	// DeleteRequest is idempotent; deleting an absent request succeeds.
	DeleteRequest(ctx context.Context, receiverID, roomID string) error
}

// MessageRepository stores chat messages keyed by conversation.
type MessageRepository interface {
	CreateMessage(ctx context.Context, msg models.Message) error
	// ListByConversation returns the conversation's messages ordered by
	// creation time ascending.
	ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	// FindByID returns ErrNotFound when no message exists for the id.
	FindByID(ctx context.Context, messageID string) (*models.Message, error)
	// MarkDelivered advances a message from sent to delivered. Returns false
	// without error when the message is already at or past delivered.
	MarkDelivered(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error)
	// MarkRead advances a message to read from any earlier status. Returns
	// false without error when the message is already read.
	MarkRead(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error)
}
