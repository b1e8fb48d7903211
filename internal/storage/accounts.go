package storage

import (
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// CreateStudent inserts a student row. A reused email surfaces as
// ErrDuplicate.
func (s *Service) CreateStudent(student *models.Student) error {
	return translate(s.DB.Create(student).Error)
}

// CreateCollege inserts a college row. Either the email or the generated
// code colliding surfaces as ErrDuplicate.
func (s *Service) CreateCollege(college *models.College) error {
	return translate(s.DB.Create(college).Error)
}

// CreateStaff inserts a staff row.
func (s *Service) CreateStaff(staff *models.Staff) error {
	return translate(s.DB.Create(staff).Error)
}

func (s *Service) GetStudentByEmail(email string) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Where("email = ?", email).First(&student).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (s *Service) GetCollegeByEmail(email string) (*models.College, error) {
	var college models.College
	if err := s.DB.Where("email = ?", email).First(&college).Error; err != nil {
		return nil, translate(err)
	}
	return &college, nil
}

func (s *Service) GetStaffByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (s *Service) GetStudentByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.DB.First(&student, id).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (s *Service) GetCollegeByID(id uint) (*models.College, error) {
	var college models.College
	if err := s.DB.First(&college, id).Error; err != nil {
		return nil, translate(err)
	}
	return &college, nil
}

func (s *Service) GetStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

// GetCollegeByCode looks a college up by its exact (already uppercased)
// code.
func (s *Service) GetCollegeByCode(code string) (*models.College, error) {
	var college models.College
	if err := s.DB.Where("college_code = ?", code).First(&college).Error; err != nil {
		return nil, translate(err)
	}
	return &college, nil
}

// CollegeCodeExists reports whether any college already holds the code.
func (s *Service) CollegeCodeExists(code string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.College{}).
		Where("college_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListStaffByCollege returns the staff roster of one college.
func (s *Service) ListStaffByCollege(collegeID uint) ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Where("college_id = ?", collegeID).Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Service) UpdateStudentPassword(id uint, hash string) error {
	return translate(s.DB.Model(&models.Student{}).
		Where("id = ?", id).
		Update("password", hash).Error)
}

func (s *Service) UpdateCollegePassword(id uint, hash string) error {
	return translate(s.DB.Model(&models.College{}).
		Where("id = ?", id).
		Update("password", hash).Error)
}

func (s *Service) UpdateStaffPassword(id uint, hash string) error {
	return translate(s.DB.Model(&models.Staff{}).
		Where("id = ?", id).
		Update("password", hash).Error)
}
