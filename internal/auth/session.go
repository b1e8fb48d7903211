package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

// ErrNoSession is returned when a session cookie is missing, tampered
// with, or points at a session that has expired out of the store.
var ErrNoSession = errors.New("no active session")

// SessionStore persists sessions keyed by id.
type SessionStore interface {
	SaveSession(sess *models.Session, ttl time.Duration) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
}

// Sessions manages the session lifecycle. The cookie value handed to the
// client is an HS256 JWT that carries only the session id, so a tampered
// cookie is rejected before the store is consulted.
type Sessions struct {
	Store  SessionStore
	secret []byte
	ttl    time.Duration
}

// NewSessions creates a session manager signing cookies with secret.
func NewSessions(store SessionStore, secret string, ttl time.Duration) *Sessions {
	return &Sessions{Store: store, secret: []byte(secret), ttl: ttl}
}

// TTL returns the session lifetime, which doubles as the cookie max-age.
func (s *Sessions) TTL() time.Duration { return s.ttl }

// Create opens a session for the principal and returns the signed cookie
// token.
func (s *Sessions) Create(p models.Principal) (string, error) {
	sess := &models.Session{
		ID:        uuid.New().String(),
		Principal: p,
		CreatedAt: time.Now(),
	}
	if err := s.Store.SaveSession(sess, s.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":  sess.ID,
		"role": p.Role.String(),
		"exp":  time.Now().Add(s.ttl).Unix(),
		"iss":  "complaint-box",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve turns a cookie token back into the stored session.
func (s *Sessions) Resolve(tokenString string) (*models.Session, error) {
	sid, err := s.sessionID(tokenString)
	if err != nil {
		return nil, ErrNoSession
	}
	sess, err := s.Store.GetSession(sid)
	if err != nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Destroy deletes the session behind the token. An already-gone session is
// not an error; logout is idempotent.
func (s *Sessions) Destroy(tokenString string) error {
	sid, err := s.sessionID(tokenString)
	if err != nil {
		return nil
	}
	return s.Store.DeleteSession(sid)
}

func (s *Sessions) sessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
