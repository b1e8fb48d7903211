// Package reset implements the password reset flow: time-boxed single-use
// tokens that rotate one principal's credential when consumed.
package reset

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

var (
	// ErrEmailNotFound means no account of that role carries the email.
	ErrEmailNotFound = errors.New("email not found")
	// ErrInvalidToken means the token does not exist, including tokens
	// already consumed once.
	ErrInvalidToken = errors.New("invalid reset token")
	// ErrExpiredToken means the token exists but its expiry has passed.
	// Expired rows are only detected here, never purged proactively.
	ErrExpiredToken = errors.New("expired reset token")
)

// Storage is the persistence surface the reset flow needs. The role is
// mapped onto typed lookups explicitly; there is no dynamic table
// selection anywhere.
type Storage interface {
	GetStudentByEmail(email string) (*models.Student, error)
	GetCollegeByEmail(email string) (*models.College, error)
	GetStaffByEmail(email string) (*models.Staff, error)
	CreatePasswordReset(reset *models.PasswordReset) error
	GetPasswordResetByToken(token string) (*models.PasswordReset, error)
	DeletePasswordReset(token string) error
	UpdateStudentPassword(id uint, hash string) error
	UpdateCollegePassword(id uint, hash string) error
	UpdateStaffPassword(id uint, hash string) error
}

// Service issues and consumes password reset tokens.
type Service struct {
	Storage Storage
}

// NewService creates a new password reset service.
func NewService(s Storage) *Service {
	return &Service{Storage: s}
}

// Request issues a fresh token for the account of the given role and
// email. Outstanding tokens for the same account stay valid. The token is
// returned to be displayed; nothing is emailed.
func (s *Service) Request(role models.Role, email string) (string, error) {
	userID, err := s.lookupAccount(role, email)
	if err != nil {
		return "", err
	}

	token, err := randomToken()
	if err != nil {
		return "", err
	}
	if err := s.Storage.CreatePasswordReset(&models.PasswordReset{
		UserRole:  role,
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(config.ResetTokenTTL),
	}); err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks a token without consuming it, for the reset form.
func (s *Service) Validate(token string) (*models.PasswordReset, error) {
	reset, err := s.Storage.GetPasswordResetByToken(token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if time.Now().After(reset.ExpiresAt) {
		return nil, ErrExpiredToken
	}
	return reset, nil
}

// Consume rotates the owning principal's password and deletes the token,
// making it permanently unusable. Expired tokens rotate nothing.
func (s *Service) Consume(token, newPassword string) (models.Role, error) {
	reset, err := s.Validate(token)
	if err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	switch reset.UserRole {
	case models.RoleStudent:
		err = s.Storage.UpdateStudentPassword(reset.UserID, hash)
	case models.RoleCollege:
		err = s.Storage.UpdateCollegePassword(reset.UserID, hash)
	case models.RoleStaff:
		err = s.Storage.UpdateStaffPassword(reset.UserID, hash)
	default:
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}

	if err := s.Storage.DeletePasswordReset(token); err != nil {
		return "", err
	}
	return reset.UserRole, nil
}

func (s *Service) lookupAccount(role models.Role, email string) (uint, error) {
	var (
		id  uint
		err error
	)
	switch role {
	case models.RoleStudent:
		var student *models.Student
		if student, err = s.Storage.GetStudentByEmail(email); err == nil {
			id = student.ID
		}
	case models.RoleCollege:
		var college *models.College
		if college, err = s.Storage.GetCollegeByEmail(email); err == nil {
			id = college.ID
		}
	case models.RoleStaff:
		var staff *models.Staff
		if staff, err = s.Storage.GetStaffByEmail(email); err == nil {
			id = staff.ID
		}
	default:
		return 0, ErrEmailNotFound
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrEmailNotFound
		}
		return 0, err
	}
	return id, nil
}

// randomToken returns a URL-safe token with ResetTokenBytes of entropy.
func randomToken() (string, error) {
	raw := make([]byte, config.ResetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
