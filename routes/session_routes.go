package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterSessionRoutes sets up routes for session operations under /api/session
func RegisterSessionRoutes(r *mux.Router, sessionService *services.SessionService) {
	controller := controllers.NewSessionController(sessionService)

	sessionRouter := r.PathPrefix("/api/session").Subrouter()

	sessionRouter.HandleFunc("/request", controller.SendRequest).Methods("POST")
	sessionRouter.HandleFunc("/requests", controller.GetRequests).Methods("GET")
	sessionRouter.HandleFunc("/request/{roomId}", controller.ClearRequest).Methods("DELETE")
	sessionRouter.HandleFunc("/end/{teacherId}/{learnerId}", controller.EndSession).Methods("POST")
	sessionRouter.HandleFunc("/history", controller.GetHistory).Methods("GET")
}
