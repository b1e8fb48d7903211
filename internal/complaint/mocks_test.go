package complaint_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// MockStorage is a testify mock of complaint.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) AssignComplaint(id, staffID uint, status models.ComplaintStatus) error {
	args := m.Called(id, staffID, status)
	return args.Error(0)
}

func (m *MockStorage) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) ListComplaintsByStudent(studentID uint) ([]models.Complaint, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaintsByStaff(staffID uint) ([]models.Complaint, error) {
	args := m.Called(staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaintsByCollegeCode(code string) ([]models.Complaint, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ListAllComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetStudentByID(id uint) (*models.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStorage) GetCollegeByID(id uint) (*models.College, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *MockStorage) GetCollegeByCode(code string) (*models.College, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *MockStorage) GetStaffByID(id uint) (*models.Staff, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

// MockNotifier is a testify mock of complaint.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(role models.Role, userID uint, message string) error {
	args := m.Called(role, userID, message)
	return args.Error(0)
}
