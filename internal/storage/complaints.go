package storage

import (
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// CreateComplaint inserts a complaint row; the ID is filled in by GORM.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	return translate(s.DB.Create(complaint).Error)
}

func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

// AssignComplaint sets the assignee and the status in one update.
// Re-assignment overwrites, last write wins.
func (s *Service) AssignComplaint(id, staffID uint, status models.ComplaintStatus) error {
	return translate(s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"staff_id": staffID,
			"status":   status,
		}).Error)
}

// UpdateComplaintStatus overwrites the stored status verbatim.
func (s *Service) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	return translate(s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (s *Service) ListComplaintsByStudent(studentID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) ListComplaintsByStaff(staffID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListComplaintsByCollegeCode restricts visibility to complaints whose
// submitting student carries the given college code.
func (s *Service) ListComplaintsByCollegeCode(code string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.
		Joins("JOIN students ON students.id = complaints.student_id").
		Where("students.college_code = ?", code).
		Order("complaints.created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListAllComplaints is the legacy fallback for college rows that predate
// code issuance.
func (s *Service) ListAllComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}
