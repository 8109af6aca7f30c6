package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/services"
)

// ChatController handles conversation and delivery-status endpoints.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// GetMessages - GET /api/chat/messages/{otherUserId}
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	otherUserID := mux.Vars(r)["otherUserId"]

	messages, err := c.ChatService.ListConversation(r.Context(), userID, otherUserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// SendMessage - POST /api/chat/send
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request struct {
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), userID, request.ReceiverID, request.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

// MarkDelivered - POST /api/chat/delivered/{messageId}
func (c *ChatController) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	messageID := mux.Vars(r)["messageId"]

	if err := c.ChatService.MarkDelivered(r.Context(), messageID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message marked delivered"})
}
