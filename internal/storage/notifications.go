package storage

import (
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// CreateNotification appends one notification row. There is no
// deduplication and no delivery beyond persistence.
func (s *Service) CreateNotification(n *models.Notification) error {
	return translate(s.DB.Create(n).Error)
}

// ListRecentNotifications returns the newest notifications first.
func (s *Service) ListRecentNotifications(role models.Role, userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.DB.
		Where("user_role = ? AND user_id = ?", role, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationsRead bulk-flips the read flag for every notification
// the principal owns.
func (s *Service) MarkNotificationsRead(role models.Role, userID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("user_role = ? AND user_id = ?", role, userID).
		Update("is_read", true).Error
}

// CountUnreadNotifications returns the principal's unread total.
func (s *Service) CountUnreadNotifications(role models.Role, userID uint) (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Notification{}).
		Where("user_role = ? AND user_id = ? AND is_read = ?", role, userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
