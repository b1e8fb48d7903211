package auth

import (
	"errors"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures never reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when a signup email is already taken
	// within that role's table.
	ErrDuplicateEmail = errors.New("email already exists")
)

// Storage is the subset of account persistence the credential store needs.
type Storage interface {
	GetStudentByEmail(email string) (*models.Student, error)
	GetCollegeByEmail(email string) (*models.College, error)
	GetStaffByEmail(email string) (*models.Staff, error)
	CreateStudent(student *models.Student) error
	CreateStaff(staff *models.Staff) error
}

// Service persists and verifies credentials for the per-role account
// tables. College accounts are created by the registry, which also issues
// their code.
type Service struct {
	Storage Storage
}

// NewService creates a new credential service.
func NewService(s Storage) *Service {
	return &Service{Storage: s}
}

// RegisterStudent creates a student account. The college code must already
// be validated and normalized by the registry.
func (s *Service) RegisterStudent(name, email, password, collegeCode string) (*models.Student, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		Name:        name,
		Email:       email,
		Password:    hash,
		CollegeCode: collegeCode,
	}
	if err := s.Storage.CreateStudent(student); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return student, nil
}

// RegisterStaff creates a staff account, optionally bound to a college.
func (s *Service) RegisterStaff(name, email, password string, collegeID *uint) (*models.Staff, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	staff := &models.Staff{
		Name:      name,
		Email:     email,
		Password:  hash,
		CollegeID: collegeID,
	}
	if err := s.Storage.CreateStaff(staff); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return staff, nil
}

// Login checks the email/password pair for the given role and returns the
// resulting Principal. Any failure comes back as ErrInvalidCredentials.
func (s *Service) Login(role models.Role, email, password string) (models.Principal, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.Storage.GetStudentByEmail(email)
		if err != nil || !CheckPassword(student.Password, password) {
			return models.Principal{}, ErrInvalidCredentials
		}
		return models.Principal{
			Role:        models.RoleStudent,
			UserID:      student.ID,
			Name:        student.Name,
			Email:       student.Email,
			CollegeCode: student.CollegeCode,
		}, nil

	case models.RoleCollege:
		college, err := s.Storage.GetCollegeByEmail(email)
		if err != nil || !CheckPassword(college.Password, password) {
			return models.Principal{}, ErrInvalidCredentials
		}
		return models.Principal{
			Role:        models.RoleCollege,
			UserID:      college.ID,
			Name:        college.Name,
			Email:       college.Email,
			CollegeCode: college.CollegeCode,
		}, nil

	case models.RoleStaff:
		staff, err := s.Storage.GetStaffByEmail(email)
		if err != nil || !CheckPassword(staff.Password, password) {
			return models.Principal{}, ErrInvalidCredentials
		}
		return models.Principal{
			Role:      models.RoleStaff,
			UserID:    staff.ID,
			Name:      staff.Name,
			Email:     staff.Email,
			CollegeID: staff.CollegeID,
		}, nil
	}

	return models.Principal{}, ErrInvalidCredentials
}
