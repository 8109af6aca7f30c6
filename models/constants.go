package models

// Realtime event names pushed to a user's topic
const (
	EventReceiveMessage = "receiveMessage"
	EventMatchAccepted  = "matchAccepted"
	EventUserTyping     = "userTyping"
	EventMessagesRead   = "messagesRead"
)

// Fixed XP awards
const (
	XPMatchAccepted    = 50
	XPSessionCompleted = 50
)

// MatchAcceptedEvent is pushed to the original sender's topic when their
// match request is accepted.
type MatchAcceptedEvent struct {
	Message string        `json:"message"`
	From    PublicProfile `json:"from"`
	Type    string        `json:"type"`
	Date    string        `json:"date"`
}

// MessagesReadEvent is pushed to a sender's topic when the receiver opens
// the conversation.
type MessagesReadEvent struct {
	By string `json:"by"`
}

// TypingEvent is relayed to the target user's topic without persistence.
type TypingEvent struct {
	From string `json:"from"`
}
