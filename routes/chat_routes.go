package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/messages/{otherUserId}", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/send", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/delivered/{messageId}", controller.MarkDelivered).Methods("POST")
}
