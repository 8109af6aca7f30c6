package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match-related operations under /api/match
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()

	matchRouter.HandleFunc("/send/{receiverId}", controller.SendRequest).Methods("POST")
	matchRouter.HandleFunc("/requests", controller.GetRequests).Methods("GET")
	matchRouter.HandleFunc("/sent", controller.GetSentRequests).Methods("GET")
	matchRouter.HandleFunc("/respond", controller.Respond).Methods("POST")
	matchRouter.HandleFunc("/matches", controller.GetMatches).Methods("GET")
}
