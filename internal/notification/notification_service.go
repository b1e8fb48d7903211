// Package notification implements the pull-based notification relay.
package notification

import (
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// Storage is the persistence surface the relay needs.
type Storage interface {
	CreateNotification(n *models.Notification) error
	ListRecentNotifications(role models.Role, userID uint, limit int) ([]models.Notification, error)
	MarkNotificationsRead(role models.Role, userID uint) error
	CountUnreadNotifications(role models.Role, userID uint) (int64, error)
}

// Service appends and serves per-principal notifications.
type Service struct {
	Storage Storage
}

// NewService creates a new notification relay.
func NewService(s Storage) *Service {
	return &Service{Storage: s}
}

// Notify appends one notification for the principal.
func (s *Service) Notify(role models.Role, userID uint, message string) error {
	return s.Storage.CreateNotification(&models.Notification{
		UserRole: role,
		UserID:   userID,
		Message:  message,
	})
}

// ListRecent returns the principal's newest notifications, capped at the
// feed limit.
func (s *Service) ListRecent(role models.Role, userID uint) ([]models.Notification, error) {
	return s.Storage.ListRecentNotifications(role, userID, config.NotificationFeedLimit)
}

// MarkAllRead flips the read flag on everything the principal owns. There
// is no selective marking.
func (s *Service) MarkAllRead(role models.Role, userID uint) error {
	return s.Storage.MarkNotificationsRead(role, userID)
}

// UnreadCount returns how many of the principal's notifications are
// unread.
func (s *Service) UnreadCount(role models.Role, userID uint) (int64, error) {
	return s.Storage.CountUnreadNotifications(role, userID)
}
