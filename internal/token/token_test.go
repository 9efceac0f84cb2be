package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func TestIssueAndVerify(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	tok, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService(testSecret, -time.Hour)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	other := NewService("another-secret-key-0987654321098765432109876543", time.Hour)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestIssue_UniqueJTI(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	a, err := svc.Issue(1)
	require.NoError(t, err)
	b, err := svc.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestIssue_NoSecret(t *testing.T) {
	svc := NewService("", time.Hour)
	_, err := svc.Issue(1)
	assert.Error(t, err)
}
