package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// ListNotifications returns the principal's ten most recent notifications,
// newest first. Anonymous callers get an empty array, matching the pull
// model of the notification widget.
func (h *Handler) ListNotifications(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Notification{})
		return
	}
	notifications, err := h.Notifications.ListRecent(p.Role, p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load notifications")
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadNotificationCount returns the principal's unread total.
func (h *Handler) UnreadNotificationCount(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	count, err := h.Notifications.UnreadCount(p.Role, p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// MarkNotificationsRead bulk-marks everything the principal owns as read.
func (h *Handler) MarkNotificationsRead(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.Notifications.MarkAllRead(p.Role, p.UserID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to mark notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
