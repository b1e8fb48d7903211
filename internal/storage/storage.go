// Package storage implements all persistence for the complaint service:
// account, complaint, notification and reset-token rows in PostgreSQL via
// GORM, and sessions in Redis.
package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

var (
	// ErrNotFound translates gorm.ErrRecordNotFound.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate translates unique-constraint violations
	// (gorm.ErrDuplicatedKey with TranslateError enabled).
	ErrDuplicate = errors.New("duplicate record")
)

// Service bundles the PostgreSQL and Redis handles behind typed methods.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewService Constructor. Redis may be nil for tools that only touch the
// database, such as the admin CLI.
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates or updates the schema for every model.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Student{},
		&models.College{},
		&models.Staff{},
		&models.Complaint{},
		&models.Notification{},
		&models.PasswordReset{},
	)
}

// translate maps GORM errors onto the package sentinels so callers can use
// errors.Is without importing gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
