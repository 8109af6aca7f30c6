package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillswap_server/models"
	"skillswap_server/utils"
)

// ChatService owns message persistence and the sent/delivered/read status
// pipeline.
type ChatService struct {
	Users    UserRepository
	Messages MessageRepository
	Notifier Notifier
}

// ListConversation returns every message between the two users, in either
// direction, ordered by creation time ascending, with both profiles
// resolved.
func (s *ChatService) ListConversation(ctx context.Context, userID, otherUserID string) ([]models.MessageWithProfiles, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.Users.GetUser(ctx, otherUserID)
	if err != nil {
		return nil, err
	}

	conversationID := utils.DeriveRoomID(userID, otherUserID)
	messages, err := s.Messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	profiles := map[string]models.PublicProfile{
		user.UserID:  user.Profile(),
		other.UserID: other.Profile(),
	}

	views := make([]models.MessageWithProfiles, 0, len(messages))
	for _, msg := range messages {
		views = append(views, models.MessageWithProfiles{
			Message:  msg,
			Sender:   profiles[msg.SenderID],
			Receiver: profiles[msg.ReceiverID],
		})
	}
	return views, nil
}

// SendMessage persists a new message with status sent and publishes it to
// both parties' topics.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.MessageWithProfiles, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content cannot be empty: %w", ErrInvalidArgument)
	}

	sender, err := s.Users.GetUser(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.Users.GetUser(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	msg := models.Message{
		ConversationID: utils.DeriveRoomID(senderID, receiverID),
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
		Status:         models.MessageStatusSent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Messages.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	view := &models.MessageWithProfiles{
		Message:  msg,
		Sender:   sender.Profile(),
		Receiver: receiver.Profile(),
	}
	s.Notifier.Publish(senderID, models.EventReceiveMessage, view)
	s.Notifier.Publish(receiverID, models.EventReceiveMessage, view)

	return view, nil
}

// MarkDelivered advances a single message from sent to delivered. A message
// already delivered or read is left untouched; moving backward is a no-op,
// never an error.
func (s *ChatService) MarkDelivered(ctx context.Context, messageID string) error {
	msg, err := s.Messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}

	if models.MessageStatusRank(msg.Status) >= models.MessageStatusRank(models.MessageStatusDelivered) {
		return nil
	}

	_, err = s.Messages.MarkDelivered(ctx, msg.ConversationID, msg.MessageID,
		time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// MarkConversationRead advances every message sent from fromID to toID that
// is not yet read, then publishes a messagesRead event to the sender's
// topic naming the reader.
func (s *ChatService) MarkConversationRead(ctx context.Context, fromID, toID string) error {
	conversationID := utils.DeriveRoomID(fromID, toID)
	messages, err := s.Messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, msg := range messages {
		if msg.SenderID != fromID || msg.Status == models.MessageStatusRead {
			continue
		}
		if _, err := s.Messages.MarkRead(ctx, conversationID, msg.MessageID, now); err != nil {
			log.Printf("failed to mark message %s as read: %v", msg.MessageID, err)
		}
	}

	s.Notifier.Publish(fromID, models.EventMessagesRead, models.MessagesReadEvent{By: toID})
	return nil
}

// NotifyTyping relays a typing signal to the target user's topic. Nothing is
// persisted.
func (s *ChatService) NotifyTyping(fromID, toID string) {
	s.Notifier.Publish(toID, models.EventUserTyping, models.TypingEvent{From: fromID})
}
