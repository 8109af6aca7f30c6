package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/services"
)

// MatchController handles match-request and match endpoints.
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// SendRequest - POST /api/match/send/{receiverId}
func (c *MatchController) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	receiverID := mux.Vars(r)["receiverId"]

	if err := c.MatchService.SendMatchRequest(r.Context(), userID, receiverID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Request sent successfully"})
}

// GetRequests - GET /api/match/requests - pending requests received
func (c *MatchController) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	requests, err := c.MatchService.ListReceivedRequests(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

// GetSentRequests - GET /api/match/sent - pending requests sent
func (c *MatchController) GetSentRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	requests, err := c.MatchService.ListSentRequests(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

// Respond - POST /api/match/respond - accept or reject a pending request
func (c *MatchController) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request struct {
		SenderID string `json:"senderId"`
		Action   string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	if err := c.MatchService.RespondToRequest(r.Context(), userID, request.SenderID, request.Action); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Request " + request.Action})
}

// GetMatches - GET /api/match/matches - matched profiles with room ids
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	matches, err := c.MatchService.ListMatches(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
