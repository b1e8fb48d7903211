package storage

import (
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// CreatePasswordReset stores a fresh reset token. Outstanding tokens for
// the same principal are left alone.
func (s *Service) CreatePasswordReset(reset *models.PasswordReset) error {
	return translate(s.DB.Create(reset).Error)
}

func (s *Service) GetPasswordResetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := s.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, translate(err)
	}
	return &reset, nil
}

// DeletePasswordReset removes a token row, making the token permanently
// unusable.
func (s *Service) DeletePasswordReset(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.PasswordReset{}).Error
}
