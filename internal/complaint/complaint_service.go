// Package complaint implements the complaint lifecycle engine: submission,
// assignment and status transitions, with role-based authorization checks
// on every mutation.
package complaint

import (
	"errors"
	"fmt"
	"log"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

var (
	// ErrUnauthorized means the caller is not allowed to perform the
	// transition; the complaint is left untouched.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the complaint or staff member does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus rejects status strings outside the closed lifecycle
	// set, and Pending, which only ever applies to fresh complaints.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrNoCollege means the submitting student has no resolvable college,
	// so the complaint cannot be routed anywhere.
	ErrNoCollege = errors.New("student is not bound to a college")
)

// Storage is the persistence surface the lifecycle engine needs.
type Storage interface {
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	AssignComplaint(id, staffID uint, status models.ComplaintStatus) error
	UpdateComplaintStatus(id uint, status models.ComplaintStatus) error
	ListComplaintsByStudent(studentID uint) ([]models.Complaint, error)
	ListComplaintsByStaff(staffID uint) ([]models.Complaint, error)
	ListComplaintsByCollegeCode(code string) ([]models.Complaint, error)
	ListAllComplaints() ([]models.Complaint, error)
	GetStudentByID(id uint) (*models.Student, error)
	GetCollegeByID(id uint) (*models.College, error)
	GetCollegeByCode(code string) (*models.College, error)
	GetStaffByID(id uint) (*models.Staff, error)
}

// Notifier delivers lifecycle notifications. Delivery happens after the
// mutating transaction has committed; a failure here leaves the mutation
// in place without its notification.
type Notifier interface {
	Notify(role models.Role, userID uint, message string) error
}

// Service handles the business logic for complaints.
type Service struct {
	Storage  Storage
	Notifier Notifier
}

// NewService creates a new complaint lifecycle service.
func NewService(s Storage, n Notifier) *Service {
	return &Service{Storage: s, Notifier: n}
}

// Detail is a complaint with its submitting student's name resolved for
// display.
type Detail struct {
	models.Complaint
	StudentName string `json:"student_name"`
}

// Submit creates a Pending complaint owned by the student and routes it to
// the student's college, resolved strictly through the stored college code.
// The attachment, if any, must already be validated and stored.
func (s *Service) Submit(studentID uint, title, description, attachment string) (*models.Complaint, error) {
	student, err := s.Storage.GetStudentByID(studentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if student.CollegeCode == "" {
		return nil, ErrNoCollege
	}
	college, err := s.Storage.GetCollegeByCode(student.CollegeCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoCollege
		}
		return nil, err
	}

	complaint := &models.Complaint{
		Title:       title,
		Description: description,
		Attachment:  attachment,
		Status:      models.StatusPending,
		StudentID:   studentID,
		CollegeID:   &college.ID,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, err
	}

	s.notify(models.RoleCollege, college.ID, "New complaint submitted: "+title)
	return complaint, nil
}

// Assign lets the owning college hand a complaint to one of its staff.
// Assignment forces the status to In Progress regardless of its prior
// value; re-assignment simply overwrites.
func (s *Service) Assign(collegeID, complaintID, staffID uint) error {
	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if complaint.CollegeID == nil || *complaint.CollegeID != collegeID {
		return ErrUnauthorized
	}

	staff, err := s.Storage.GetStaffByID(staffID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if staff.CollegeID == nil || *staff.CollegeID != collegeID {
		return ErrUnauthorized
	}

	if err := s.Storage.AssignComplaint(complaintID, staffID, models.StatusInProgress); err != nil {
		return err
	}

	s.notify(models.RoleStaff, staffID, "You have been assigned a complaint: "+complaint.Title)
	return nil
}

// UpdateStatus lets the assigned staff member move a complaint within the
// closed status set. Only the staff member the complaint is assigned to may
// call this; an unassigned complaint cannot be status-updated at all.
func (s *Service) UpdateStatus(staffID, complaintID uint, rawStatus string) error {
	status, err := models.ParseComplaintStatus(rawStatus)
	if err != nil || status == models.StatusPending {
		return ErrInvalidStatus
	}

	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if complaint.StaffID == nil || *complaint.StaffID != staffID {
		return ErrUnauthorized
	}

	if err := s.Storage.UpdateComplaintStatus(complaintID, status); err != nil {
		return err
	}

	s.notify(models.RoleStudent, complaint.StudentID,
		fmt.Sprintf("Your complaint %q status changed to %s", complaint.Title, status))
	return nil
}

// Get returns one complaint with the student name resolved.
func (s *Service) Get(complaintID uint) (*Detail, error) {
	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Detail{Complaint: *complaint, StudentName: s.studentName(complaint.StudentID)}, nil
}

// ListForStudent returns the student's own complaints, newest first.
func (s *Service) ListForStudent(studentID uint) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByStudent(studentID)
}

// ListForStaff returns the complaints assigned to the staff member,
// newest first.
func (s *Service) ListForStaff(staffID uint) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByStaff(staffID)
}

// ListForCollege returns the complaints visible to a college, scoped by
// the college code of their submitting students. A college row without a
// code predates code issuance and sees everything.
func (s *Service) ListForCollege(collegeID uint) ([]Detail, error) {
	college, err := s.Storage.GetCollegeByID(collegeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var complaints []models.Complaint
	if college.CollegeCode != "" {
		complaints, err = s.Storage.ListComplaintsByCollegeCode(college.CollegeCode)
	} else {
		complaints, err = s.Storage.ListAllComplaints()
	}
	if err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(complaints))
	for _, c := range complaints {
		details = append(details, Detail{Complaint: c, StudentName: s.studentName(c.StudentID)})
	}
	return details, nil
}

func (s *Service) studentName(studentID uint) string {
	student, err := s.Storage.GetStudentByID(studentID)
	if err != nil {
		return "Unknown"
	}
	return student.Name
}

// notify records a lifecycle notification. The triggering mutation has
// already committed, so errors are logged and swallowed rather than
// failing the request.
func (s *Service) notify(role models.Role, userID uint, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(role, userID, message); err != nil {
		log.Printf("ERROR: Failed to notify %s %d: %v", role, userID, err)
	}
}
