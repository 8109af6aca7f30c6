package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap_server/models"
	"skillswap_server/utils"
)

const sessionTitle = "Skill Swap Session"

// Display format for dashboard timestamps.
const recentSessionTimeFormat = "Jan 2, 2006 3:04 PM"

// SessionService owns the session-request lifecycle and session-completion
// bookkeeping.
type SessionService struct {
	Users    UserRepository
	Requests SessionRequestRepository
}

// SendSessionRequest records an incoming request on the receiver for the
// pair's derived room. Returns the room id so the sender can join it.
func (s *SessionService) SendSessionRequest(ctx context.Context, senderID, receiverID string) (string, error) {
	if senderID == receiverID {
		return "", fmt.Errorf("cannot request a session with yourself: %w", ErrInvalidArgument)
	}
	if _, err := s.Users.GetUser(ctx, receiverID); err != nil {
		return "", err
	}

	roomID := utils.DeriveRoomID(senderID, receiverID)
	req := models.SessionRequest{
		ReceiverID: receiverID,
		RoomID:     roomID,
		FromID:     senderID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Requests.CreateRequest(ctx, req); err != nil {
		return "", err
	}
	return roomID, nil
}

// ListSessionRequests returns the user's incoming requests with each
// sender's public profile resolved.
func (s *SessionService) ListSessionRequests(ctx context.Context, userID string) ([]models.SessionRequestView, error) {
	if _, err := s.Users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.Requests.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.SessionRequestView, 0, len(reqs))
	for _, req := range reqs {
		sender, err := s.Users.GetUser(ctx, req.FromID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, models.SessionRequestView{
			PublicProfile: sender.Profile(),
			RoomID:        req.RoomID,
			Date:          req.CreatedAt,
		})
	}
	return views, nil
}

// ClearSessionRequest removes any incoming request for the room. Idempotent:
// clearing an absent request succeeds.
func (s *SessionService) ClearSessionRequest(ctx context.Context, userID, roomID string) error {
	return s.Requests.DeleteRequest(ctx, userID, roomID)
}

// CompleteSession records a finished session for both parties: the fixed XP
// award, a match entry if absent, one session-history entry per side with
// the same timestamp, and a dashboard entry capped at the most recent ten.
// The first user is recorded as the teacher, the second as the learner.
func (s *SessionService) CompleteSession(ctx context.Context, teacherID, learnerID string) error {
	teacher, err := s.Users.GetUser(ctx, teacherID)
	if err != nil {
		return err
	}
	learner, err := s.Users.GetUser(ctx, learnerID)
	if err != nil {
		return err
	}

	AwardXP(teacher, models.XPSessionCompleted)
	AwardXP(learner, models.XPSessionCompleted)

	teacher.AddMatch(learnerID)
	learner.AddMatch(teacherID)

	now := time.Now().UTC()
	stamp := now.Format(time.RFC3339)

	teacher.SessionHistory = append(teacher.SessionHistory, models.SessionRecord{
		Partner: learnerID,
		Role:    models.RoleTaught,
		Date:    stamp,
	})
	learner.SessionHistory = append(learner.SessionHistory, models.SessionRecord{
		Partner: teacherID,
		Role:    models.RoleLearned,
		Date:    stamp,
	})

	display := now.Format(recentSessionTimeFormat)
	teacher.RecentSessions = prependRecent(teacher.RecentSessions, models.RecentSession{
		Title: sessionTitle,
		Type:  "Taught",
		Date:  display,
	})
	learner.RecentSessions = prependRecent(learner.RecentSessions, models.RecentSession{
		Title: sessionTitle,
		Type:  "Learned",
		Date:  display,
	})

	if err := s.Users.SaveUser(ctx, teacher); err != nil {
		return err
	}
	return s.Users.SaveUser(ctx, learner)
}

// SessionHistory returns the user's session history with partner usernames
// resolved.
func (s *SessionService) SessionHistory(ctx context.Context, userID string) ([]models.SessionHistoryView, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.SessionHistoryView, 0, len(user.SessionHistory))
	for _, record := range user.SessionHistory {
		partnerName := record.Partner
		if partner, err := s.Users.GetUser(ctx, record.Partner); err == nil {
			partnerName = partner.Username
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		views = append(views, models.SessionHistoryView{
			PartnerName: partnerName,
			Role:        record.Role,
			Date:        record.Date,
		})
	}
	return views, nil
}

func prependRecent(list []models.RecentSession, entry models.RecentSession) []models.RecentSession {
	list = append([]models.RecentSession{entry}, list...)
	if len(list) > models.MaxRecentSessions {
		list = list[:models.MaxRecentSessions]
	}
	return list
}
