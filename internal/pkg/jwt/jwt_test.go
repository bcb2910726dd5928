package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	s := New("secret", time.Hour)

	tok, err := s.GenerateToken(" Sam ")
	require.NoError(t, err)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "Sam", claims.Actor)
	assert.Equal(t, "Sam", claims.Subject)
}

func TestGenerateToken_EmptyActor(t *testing.T) {
	_, err := New("secret", time.Hour).GenerateToken("  ")
	assert.ErrorIs(t, err, ErrEmptyActor)
}

func TestValidateToken_Rejects(t *testing.T) {
	s := New("secret", time.Hour)
	tok, err := s.GenerateToken("sam")
	require.NoError(t, err)

	_, err = New("other", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := New("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateToken("sam")
	require.NoError(t, err)
	_, err = s.ValidateToken(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
