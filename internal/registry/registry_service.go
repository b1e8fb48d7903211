// Package registry implements the college registry: college signup, code
// issuance and code validation for student/staff binding.
package registry

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

var (
	// ErrDuplicateEmail is returned when the signup email is already taken
	// within the colleges table.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCollegeCode is returned when a code does not belong to any
	// registered college.
	ErrInvalidCollegeCode = errors.New("invalid college code")
)

// Storage is the subset of persistence the registry needs.
type Storage interface {
	CreateCollege(college *models.College) error
	GetCollegeByCode(code string) (*models.College, error)
	CollegeCodeExists(code string) (bool, error)
	ListStaffByCollege(collegeID uint) ([]models.Staff, error)
}

// Service handles college registration and code lookups.
type Service struct {
	Storage Storage
}

// NewService creates a new registry service.
func NewService(s Storage) *Service {
	return &Service{Storage: s}
}

// Register creates a college account with a freshly issued unique code.
// The colleges table holds two unique indexes, so a duplicate on insert is
// only a taken email after ruling out a concurrently issued code.
func (s *Service) Register(name, email, password string) (*models.College, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	for {
		code, err := s.generateCode()
		if err != nil {
			return nil, err
		}

		college := &models.College{
			Name:        name,
			Email:       email,
			Password:    hash,
			CollegeCode: code,
		}
		err = s.Storage.CreateCollege(college)
		if err == nil {
			return college, nil
		}
		if !errors.Is(err, storage.ErrDuplicate) {
			return nil, err
		}
		taken, checkErr := s.Storage.CollegeCodeExists(code)
		if checkErr != nil {
			return nil, checkErr
		}
		if !taken {
			return nil, ErrDuplicateEmail
		}
		// Lost the race on the code between the pre-check and the
		// insert; draw another one.
	}
}

// ValidateCode resolves a college code, case-insensitively, to its college.
func (s *Service) ValidateCode(code string) (*models.College, error) {
	code = NormalizeCode(code)
	college, err := s.Storage.GetCollegeByCode(code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCollegeCode
		}
		return nil, err
	}
	return college, nil
}

// StaffRoster lists the staff accounts bound to a college.
func (s *Service) StaffRoster(collegeID uint) ([]models.Staff, error) {
	return s.Storage.ListStaffByCollege(collegeID)
}

// NormalizeCode uppercases and trims a user-supplied college code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateCode draws random codes until one is free. The code space is
// 32^6, so collisions are rare and the loop terminates quickly.
func (s *Service) generateCode() (string, error) {
	for {
		code, err := RandomCode()
		if err != nil {
			return "", err
		}
		exists, err := s.Storage.CollegeCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// RandomCode returns a 6-character code from the restricted alphabet,
// which excludes visually ambiguous symbols (0/O, 1/I).
func RandomCode() (string, error) {
	alphabet := config.CollegeCodeAlphabet
	b := make([]byte, config.CollegeCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
