package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/services"
)

// SessionController handles session-request and session-completion endpoints.
type SessionController struct {
	SessionService *services.SessionService
}

// NewSessionController initializes the session controller
func NewSessionController(service *services.SessionService) *SessionController {
	return &SessionController{SessionService: service}
}

// SendRequest - POST /api/session/request
func (c *SessionController) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request struct {
		ToUserID string `json:"toUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	roomID, err := c.SessionService.SendSessionRequest(r.Context(), userID, request.ToUserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Session request sent",
		"roomId":  roomID,
	})
}

// GetRequests - GET /api/session/requests
func (c *SessionController) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	requests, err := c.SessionService.ListSessionRequests(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

// ClearRequest - DELETE /api/session/request/{roomId}
func (c *SessionController) ClearRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	roomID := mux.Vars(r)["roomId"]

	if err := c.SessionService.ClearSessionRequest(r.Context(), userID, roomID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session request cleared"})
}

// EndSession - POST /api/session/end/{teacherId}/{learnerId}
func (c *SessionController) EndSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	vars := mux.Vars(r)

	if err := c.SessionService.CompleteSession(r.Context(), vars["teacherId"], vars["learnerId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session ended and recorded for both users"})
}

// GetHistory - GET /api/session/history
func (c *SessionController) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sessions, err := c.SessionService.SessionHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}
