package models

// MatchRequestsTable is the DynamoDB table name for match requests
const MatchRequestsTable = "MatchRequests"

// Global secondary indexes on MatchRequests
const (
	MatchRequestReceiverIndex = "ReceiverIndex"
	MatchRequestSenderIndex   = "SenderIndex"
)

// Match request statuses. Accepted and rejected are terminal.
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// MatchRequest is a single record per user pair. Both parties' sent/received
// views derive from it, so the two sides can never disagree on status.
type MatchRequest struct {
	PairID      string `dynamodbav:"pairId" json:"-"`
	SenderID    string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID  string `dynamodbav:"receiverId" json:"receiverId"`
	Status      string `dynamodbav:"status" json:"status"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
	RespondedAt string `dynamodbav:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

// MatchRequestPairID derives the partition key for a pair of user ids. The
// ids are sorted so the key is identical regardless of direction.
func MatchRequestPairID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}

// MatchRequestView is a request resolved to the counterpart's public profile.
type MatchRequestView struct {
	PublicProfile
	Status string `json:"status"`
	Date   string `json:"date"`
}

// MatchView is a matched counterpart's profile plus the derived room id.
type MatchView struct {
	PublicProfile
	RoomID string `json:"roomId"`
}
