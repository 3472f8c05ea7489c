package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/auth"
)

var secret = []byte("test-secret")

func TestIssueVerify_RoundTrip(t *testing.T) {
	tok, err := auth.Issue(secret, "user-1", time.Hour, time.Now())
	require.NoError(t, err)

	sub, err := auth.Verify(secret, tok)

	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := auth.Issue(secret, "user-1", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = auth.Verify([]byte("other"), tok)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	tok, err := auth.Issue(secret, "user-1", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = auth.Verify(secret, tok)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = auth.Verify(secret, tok)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := auth.Verify(secret, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssue_EmptyUser(t *testing.T) {
	_, err := auth.Issue(secret, "", time.Hour, time.Now())
	assert.Error(t, err)
}

func TestUserID(t *testing.T) {
	_, ok := auth.UserID(context.Background())
	assert.False(t, ok)

	id, ok := auth.UserID(auth.WithUser(context.Background(), "u-9"))
	assert.True(t, ok)
	assert.Equal(t, "u-9", id)
}
