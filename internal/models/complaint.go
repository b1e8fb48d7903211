package models

import (
	"fmt"
	"time"
)

// ComplaintStatus is the closed set of lifecycle states. It is stored as
// plain text so existing rows keep their string encoding.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusRejected   ComplaintStatus = "Rejected"
)

// ParseComplaintStatus validates a status string supplied by a client.
// The stored encoding is verbatim; no normalization is applied.
func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch ComplaintStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return ComplaintStatus(s), nil
	}
	return "", fmt.Errorf("unknown complaint status %q", s)
}

func (s ComplaintStatus) String() string { return string(s) }

// Complaint is a student-submitted issue tracked through status states.
// StaffID stays nil until the first assignment, which forces the status
// to "In Progress".
type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Attachment  string          `gorm:"type:text" json:"attachment,omitempty"` // stored filename under the upload dir
	Status      ComplaintStatus `gorm:"type:text;not null;default:Pending" json:"status"`
	StudentID   uint            `gorm:"index" json:"student_id"`
	StaffID     *uint           `gorm:"index" json:"staff_id"`
	CollegeID   *uint           `gorm:"index" json:"college_id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
