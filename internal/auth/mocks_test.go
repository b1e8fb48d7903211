package auth_test

import (
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// MockAccounts is a testify mock of the auth.Storage account lookups.
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) GetStudentByEmail(email string) (*models.Student, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockAccounts) GetCollegeByEmail(email string) (*models.College, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *MockAccounts) GetStaffByEmail(email string) (*models.Staff, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *MockAccounts) CreateStudent(student *models.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockAccounts) CreateStaff(staff *models.Staff) error {
	args := m.Called(staff)
	return args.Error(0)
}

// stubSessionStore is an in-memory auth.SessionStore.
type stubSessionStore struct {
	sessions map[string]*models.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*models.Session)}
}

func (s *stubSessionStore) SaveSession(sess *models.Session, _ time.Duration) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *stubSessionStore) GetSession(id string) (*models.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return sess, nil
}

func (s *stubSessionStore) DeleteSession(id string) error {
	delete(s.sessions, id)
	return nil
}
