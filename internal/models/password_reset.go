package models

import "time"

// PasswordReset is a single-use, time-boxed credential-rotation token.
// Consuming it deletes the row; expiry is only checked lazily at
// consumption time.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserRole  Role      `gorm:"type:text;not null" json:"user_role"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"type:text;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
