package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

func testPrincipal() models.Principal {
	return models.Principal{
		Role:        models.RoleStudent,
		UserID:      42,
		Name:        "Asha",
		Email:       "asha@example.com",
		CollegeCode: "AB23CD",
	}
}

// TestSessionRoundtrip verifies that a created session resolves back to
// the same principal.
func TestSessionRoundtrip(t *testing.T) {
	sessions := auth.NewSessions(newStubSessionStore(), "test-secret", time.Hour)

	token, err := sessions.Create(testPrincipal())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sess, err := sessions.Resolve(token)
	assert.NoError(t, err)
	assert.Equal(t, testPrincipal(), sess.Principal)
}

// TestSessionTamperedToken verifies that a modified cookie token is
// rejected before the store is consulted.
func TestSessionTamperedToken(t *testing.T) {
	sessions := auth.NewSessions(newStubSessionStore(), "test-secret", time.Hour)

	token, err := sessions.Create(testPrincipal())
	assert.NoError(t, err)

	_, err = sessions.Resolve(token + "x")
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

// TestSessionWrongSecret verifies that tokens signed under another secret
// do not resolve.
func TestSessionWrongSecret(t *testing.T) {
	store := newStubSessionStore()
	issuer := auth.NewSessions(store, "secret-a", time.Hour)
	verifier := auth.NewSessions(store, "secret-b", time.Hour)

	token, err := issuer.Create(testPrincipal())
	assert.NoError(t, err)

	_, err = verifier.Resolve(token)
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

// TestSessionDestroy verifies that logout invalidates the session and is
// idempotent.
func TestSessionDestroy(t *testing.T) {
	sessions := auth.NewSessions(newStubSessionStore(), "test-secret", time.Hour)

	token, err := sessions.Create(testPrincipal())
	assert.NoError(t, err)

	assert.NoError(t, sessions.Destroy(token))
	_, err = sessions.Resolve(token)
	assert.ErrorIs(t, err, auth.ErrNoSession)

	// Destroying again is a no-op.
	assert.NoError(t, sessions.Destroy(token))
}
