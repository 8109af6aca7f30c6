package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap_server/models"
	"skillswap_server/utils"
)

// MatchService owns the match-request lifecycle and match materialization.
type MatchService struct {
	Users    UserRepository
	Requests MatchRequestRepository
	Notifier Notifier
}

// SendMatchRequest records a pending request from sender to receiver. Fails
// with ErrAlreadyRequested when a pending or accepted request already exists
// between the pair, in either direction.
func (s *MatchService) SendMatchRequest(ctx context.Context, senderID, receiverID string) error {
	if senderID == receiverID {
		return fmt.Errorf("cannot send a match request to yourself: %w", ErrInvalidArgument)
	}
	if _, err := s.Users.GetUser(ctx, senderID); err != nil {
		return err
	}
	if _, err := s.Users.GetUser(ctx, receiverID); err != nil {
		return err
	}

	req := models.MatchRequest{
		PairID:     models.MatchRequestPairID(senderID, receiverID),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.MatchStatusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	return s.Requests.CreateRequest(ctx, req)
}

// ListReceivedRequests returns the user's pending requests with each
// sender's public profile resolved.
func (s *MatchService) ListReceivedRequests(ctx context.Context, userID string) ([]models.MatchRequestView, error) {
	if _, err := s.Users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.Requests.ListByReceiver(ctx, userID, models.MatchStatusPending)
	if err != nil {
		return nil, err
	}
	return s.resolveRequests(ctx, reqs, func(req models.MatchRequest) string { return req.SenderID })
}

// ListSentRequests returns the user's pending sent requests with each
// receiver's public profile resolved.
func (s *MatchService) ListSentRequests(ctx context.Context, userID string) ([]models.MatchRequestView, error) {
	if _, err := s.Users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.Requests.ListBySender(ctx, userID, models.MatchStatusPending)
	if err != nil {
		return nil, err
	}
	return s.resolveRequests(ctx, reqs, func(req models.MatchRequest) string { return req.ReceiverID })
}

func (s *MatchService) resolveRequests(ctx context.Context, reqs []models.MatchRequest, counterpart func(models.MatchRequest) string) ([]models.MatchRequestView, error) {
	views := make([]models.MatchRequestView, 0, len(reqs))
	for _, req := range reqs {
		user, err := s.Users.GetUser(ctx, counterpart(req))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// Counterpart account was removed; skip the stale request.
				continue
			}
			return nil, err
		}
		views = append(views, models.MatchRequestView{
			PublicProfile: user.Profile(),
			Status:        req.Status,
			Date:          req.CreatedAt,
		})
	}
	return views, nil
}

// RespondToRequest moves the pair's pending request to accepted or rejected.
// On accept, both users gain the match and the fixed XP award, and a
// matchAccepted event is pushed to the original sender's topic.
func (s *MatchService) RespondToRequest(ctx context.Context, receiverID, senderID, action string) error {
	if action != models.MatchStatusAccepted && action != models.MatchStatusRejected {
		return fmt.Errorf("action must be accepted or rejected: %w", ErrInvalidArgument)
	}

	receiver, err := s.Users.GetUser(ctx, receiverID)
	if err != nil {
		return err
	}
	sender, err := s.Users.GetUser(ctx, senderID)
	if err != nil {
		return err
	}

	pairID := models.MatchRequestPairID(senderID, receiverID)
	req, err := s.Requests.GetRequest(ctx, pairID)
	if err != nil {
		return err
	}
	if req.ReceiverID != receiverID {
		return fmt.Errorf("no match request from '%s' to '%s': %w", senderID, receiverID, ErrNotFound)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	// Conditional on pending, so a second respond cannot re-run the
	// acceptance bookkeeping.
	if err := s.Requests.UpdateStatus(ctx, pairID, models.MatchStatusPending, action, now); err != nil {
		return err
	}

	if action != models.MatchStatusAccepted {
		return nil
	}

	receiver.AddMatch(senderID)
	sender.AddMatch(receiverID)
	AwardXP(receiver, models.XPMatchAccepted)
	AwardXP(sender, models.XPMatchAccepted)

	if err := s.Users.SaveUser(ctx, receiver); err != nil {
		return err
	}
	if err := s.Users.SaveUser(ctx, sender); err != nil {
		return err
	}

	s.Notifier.Publish(senderID, models.EventMatchAccepted, models.MatchAcceptedEvent{
		Message: fmt.Sprintf("%s accepted your match request.", receiver.Username),
		From:    receiver.Profile(),
		Type:    models.EventMatchAccepted,
		Date:    now,
	})

	return nil
}

// ListMatches returns each matched counterpart's public profile plus the
// derived room id for the pair.
func (s *MatchService) ListMatches(ctx context.Context, userID string) ([]models.MatchView, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.MatchView, 0, len(user.Matches))
	for _, matchID := range user.Matches {
		partner, err := s.Users.GetUser(ctx, matchID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, models.MatchView{
			PublicProfile: partner.Profile(),
			RoomID:        utils.DeriveRoomID(userID, matchID),
		})
	}
	return views, nil
}
