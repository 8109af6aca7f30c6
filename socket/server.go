package socket

import (
	"context"
	"log"

	socketio "github.com/googollee/go-socket.io"

	"skillswap_server/services"
)

// Hub adapts the socket.io server to the services.Notifier interface. Every
// connection joins the room named by its own user id, so publishing to a
// user id reaches all of that user's live sessions.
type Hub struct {
	server *socketio.Server
}

// NewHub wraps a socket.io server as a Notifier.
func NewHub(server *socketio.Server) *Hub {
	return &Hub{server: server}
}

// Publish delivers the event to every connection joined to the user's room.
// Fire-and-forget: when nobody is joined the event is dropped.
func (h *Hub) Publish(userID, event string, payload interface{}) {
	h.server.BroadcastToRoom("/", userID, event, payload)
}

// NewServer initializes the Socket.IO server and its connection lifecycle
// handlers.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid user id in join request")
			return
		}
		// A connection may only subscribe to its own topic.
		if boundID, ok := c.Context().(string); ok && boundID != "" && boundID != userID {
			log.Printf("❌ Connection %s for user %s rejected joining topic %s", c.ID(), boundID, userID)
			return
		}
		c.SetContext(userID)
		c.Join(userID)
		log.Printf("👤 User %s joined their topic", userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

type messagePayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

type typingPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type seenPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RegisterChatEvents wires the realtime chat events onto the server. Clients
// that stay on the socket get the same persistence and fan-out as the HTTP
// surface, because both terminate in the ChatService.
func RegisterChatEvents(server *socketio.Server, chatService *services.ChatService) {
	server.OnEvent("/", "sendMessage", func(c socketio.Conn, p messagePayload) {
		if _, err := chatService.SendMessage(context.Background(), p.From, p.To, p.Content); err != nil {
			log.Printf("❌ Socket message error: %v", err)
		}
	})

	server.OnEvent("/", "typing", func(c socketio.Conn, p typingPayload) {
		chatService.NotifyTyping(p.From, p.To)
	})

	server.OnEvent("/", "messageSeen", func(c socketio.Conn, p seenPayload) {
		if err := chatService.MarkConversationRead(context.Background(), p.From, p.To); err != nil {
			log.Printf("❌ Message seen error: %v", err)
		}
	})
}
