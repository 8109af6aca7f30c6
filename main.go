package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"skillswap_server/controllers"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize repositories
	users := &services.DynamoUserRepository{Dynamo: dynamoService}
	matchRequests := &services.DynamoMatchRequestRepository{Dynamo: dynamoService}
	sessionRequests := &services.DynamoSessionRequestRepository{Dynamo: dynamoService}
	messages := &services.DynamoMessageRepository{Dynamo: dynamoService}

	// Initialize the realtime hub
	socketServer := socket.NewServer()
	hub := socket.NewHub(socketServer)

	// Initialize Services
	matchService := &services.MatchService{Users: users, Requests: matchRequests, Notifier: hub}
	sessionService := &services.SessionService{Users: users, Requests: sessionRequests}
	chatService := &services.ChatService{Users: users, Messages: messages, Notifier: hub}
	socket.RegisterChatEvents(socketServer, chatService)

	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "SkillSwap API is live")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Realtime transport
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterSessionRoutes(r, sessionService)
	routes.RegisterChatRoutes(r, chatService)

	// Add CORS middleware
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", controllers.UserIDHeader},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
