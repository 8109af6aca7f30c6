package models

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// MessageIDIndex is the GSI used to look a message up by its id alone.
const MessageIDIndex = "MessageIdIndex"

// Message delivery statuses. Transitions only ever move forward.
const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

var messageStatusRank = map[string]int{
	MessageStatusSent:      1,
	MessageStatusDelivered: 2,
	MessageStatusRead:      3,
}

// MessageStatusRank orders the delivery pipeline; an unknown status ranks 0.
func MessageStatusRank(status string) int {
	return messageStatusRank[status]
}

// Message is a single chat message between two users. ConversationID is the
// derived room token of the pair, so both directions share one partition.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID     string `dynamodbav:"receiverId" json:"receiverId"`
	Content        string `dynamodbav:"content" json:"content"`
	Status         string `dynamodbav:"status" json:"status"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt      string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// MessageWithProfiles is a message with sender and receiver profiles resolved.
type MessageWithProfiles struct {
	Message
	Sender   PublicProfile `json:"sender"`
	Receiver PublicProfile `json:"receiver"`
}
