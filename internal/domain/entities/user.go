package entities

import "time"

// User is a learner known to the bot.
type User struct {
	ID         int64 // Telegram user ID
	ChatID     int64 // private chat the bot writes to
	Username   string
	IsActive   bool
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// NewUser creates an active user seen at now.
func NewUser(id, chatID int64, username string, now time.Time) *User {
	return &User{
		ID:         id,
		ChatID:     chatID,
		Username:   username,
		IsActive:   true,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}
