package models

// UsersTable is the DynamoDB table name for user records
const UsersTable = "Users"

// MaxRecentSessions caps the recentSessions list shown on the dashboard.
const MaxRecentSessions = 10

// Session roles recorded in a user's session history.
const (
	RoleTaught  = "taught"
	RoleLearned = "learned"
)

// PublicProfile is the subset of a user record exposed to other users.
type PublicProfile struct {
	UserID   string `dynamodbav:"userId" json:"userId"`
	Username string `dynamodbav:"username" json:"username"`
	Avatar   string `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Bio      string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
}

// SessionRecord is one entry in a user's session history.
type SessionRecord struct {
	Partner string `dynamodbav:"partner" json:"partner"`
	Role    string `dynamodbav:"role" json:"role"`
	Date    string `dynamodbav:"date" json:"date"`
}

// RecentSession is one dashboard entry, most recent first.
type RecentSession struct {
	Title string `dynamodbav:"title" json:"title"`
	Type  string `dynamodbav:"type" json:"type"`
	Date  string `dynamodbav:"date" json:"date"`
}

// User defines the structure for user records. Records are created by the
// signup flow; this core only mutates them.
type User struct {
	UserID         string          `dynamodbav:"userId" json:"userId"`
	Username       string          `dynamodbav:"username" json:"username"`
	Avatar         string          `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Bio            string          `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	SkillsToTeach  []string        `dynamodbav:"skillsToTeach,omitempty" json:"skillsToTeach,omitempty"`
	SkillsToLearn  []string        `dynamodbav:"skillsToLearn,omitempty" json:"skillsToLearn,omitempty"`
	XP             int             `dynamodbav:"xp" json:"xp"`
	Level          int             `dynamodbav:"level" json:"level"`
	Badges         []string        `dynamodbav:"badges,omitempty" json:"badges,omitempty"`
	Matches        []string        `dynamodbav:"matches,omitempty" json:"matches,omitempty"`
	SessionHistory []SessionRecord `dynamodbav:"sessionHistory,omitempty" json:"sessionHistory,omitempty"`
	RecentSessions []RecentSession `dynamodbav:"recentSessions,omitempty" json:"recentSessions,omitempty"`
}

// Profile returns the user's public profile fields.
func (u *User) Profile() PublicProfile {
	return PublicProfile{
		UserID:   u.UserID,
		Username: u.Username,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

// HasBadge reports whether the user already holds the badge.
func (u *User) HasBadge(badge string) bool {
	for _, b := range u.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// HasMatch reports whether the given user id is already in the matches set.
func (u *User) HasMatch(userID string) bool {
	for _, id := range u.Matches {
		if id == userID {
			return true
		}
	}
	return false
}

// AddMatch appends the user id to the matches set if not already present.
func (u *User) AddMatch(userID string) {
	if !u.HasMatch(userID) {
		u.Matches = append(u.Matches, userID)
	}
}
