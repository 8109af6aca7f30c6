package models

// SessionRequestsTable is the DynamoDB table name for incoming session requests
const SessionRequestsTable = "SessionRequests"

// SessionRequest is an incoming live-session invitation owned by the
// receiving user. It is only ever created and removed, never updated.
type SessionRequest struct {
	ReceiverID string `dynamodbav:"receiverId" json:"receiverId"`
	RoomID     string `dynamodbav:"roomId" json:"roomId"`
	FromID     string `dynamodbav:"fromId" json:"fromId"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// SessionRequestView is a request resolved to the sender's public profile.
type SessionRequestView struct {
	PublicProfile
	RoomID string `json:"roomId"`
	Date   string `json:"date"`
}

// SessionHistoryView is a session history entry with the partner resolved.
type SessionHistoryView struct {
	PartnerName string `json:"partnerName"`
	Role        string `json:"role"`
	Date        string `json:"date"`
}
