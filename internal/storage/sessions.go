package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

const sessionKeyPrefix = "session:"

// SaveSession writes the session payload to Redis with the given TTL.
func (s *Service) SaveSession(sess *models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, sessionKeyPrefix+sess.ID, payload, ttl).Err()
}

// GetSession loads a session by id. A missing or expired key comes back as
// ErrNotFound.
func (s *Service) GetSession(id string) (*models.Session, error) {
	payload, err := s.Redis.Get(s.Ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession drops the session key; deleting a missing key is a no-op.
func (s *Service) DeleteSession(id string) error {
	return s.Redis.Del(s.Ctx, sessionKeyPrefix+id).Err()
}
