package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", 0)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestIssueRequiresUserID(t *testing.T) {
	_, err := NewTokenManager("secret", 0).Issue("")
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt))

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	almost := m.WithClock(fixedClock(issuedAt.Add(DefaultTokenTTL - time.Minute)))
	userID, err := almost.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	later := m.WithClock(fixedClock(issuedAt.Add(DefaultTokenTTL + time.Minute)))
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyBadSignature(t *testing.T) {
	m := NewTokenManager("secret", 0)
	other := NewTokenManager("another-secret", 0)

	token, err := m.Issue("user-1")
	require.NoError(t, err)
	forged, err := other.Issue("user-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	require.Len(t, parts, 3)
	require.Len(t, forgedParts, 3)
	tampered := parts[0] + "." + parts[1] + "." + forgedParts[2]

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenBadSignature)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	m := NewTokenManager("secret", 0)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", raw)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	m := NewTokenManager("secret", 0)
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	m := NewTokenManager("secret", 0)
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}
