package models

import "time"

// User owns its task list and at most one friend at a time. FriendRequests
// holds the ids of users who asked this user for friendship, each at most once.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	FriendID       *uint     `json:"friend,omitempty"`
	FriendRequests []uint    `gorm:"serializer:json" json:"friendRequests"`
	DeviceToken    string    `json:"-"`
	CreatedAt      time.Time `gorm:"not null" json:"-"`
}

// UserSummary is the projection exposed by the friendship listing endpoints.
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (user *User) Summary() UserSummary {
	return UserSummary{Username: user.Username, Email: user.Email}
}

func (user *User) HasFriend() bool {
	return user.FriendID != nil
}

func (user *User) HasRequestFrom(senderID uint) bool {
	for _, id := range user.FriendRequests {
		if id == senderID {
			return true
		}
	}
	return false
}

// RemoveRequestFrom drops senderID from FriendRequests and reports whether
// it was present. Removing an absent id is a no-op.
func (user *User) RemoveRequestFrom(senderID uint) bool {
	remaining := make([]uint, 0, len(user.FriendRequests))
	removed := false
	for _, id := range user.FriendRequests {
		if id == senderID {
			removed = true
			continue
		}
		remaining = append(remaining, id)
	}
	user.FriendRequests = remaining
	return removed
}
