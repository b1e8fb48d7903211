package models

import "time"

// Notification is a pull-based informational message owned by one
// principal. It is not linked to the complaint that triggered it.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserRole  Role      `gorm:"type:text;not null;index:idx_notification_owner" json:"-"`
	UserID    uint      `gorm:"not null;index:idx_notification_owner" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
