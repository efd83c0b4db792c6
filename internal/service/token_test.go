package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-32+"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.GenerateAccess("owner", RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, time.Hour, token.ExpiresIn)

	sub, role, err := m.ParseAccess(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner", sub)
	assert.Equal(t, RoleAdmin, role)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	issued, err := NewTokenManager("another-secret-that-is-long-enough", time.Hour).GenerateAccess("owner", RoleAdmin)
	require.NoError(t, err)

	_, _, err = NewTokenManager(testSecret, time.Hour).ParseAccess(issued.AccessToken)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager(testSecret, time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateAccess("owner", RoleAdmin)
	require.NoError(t, err)

	_, _, err = m.ParseAccess(token.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, _, err := NewTokenManager(testSecret, time.Hour).ParseAccess("not-a-token")
	assert.Error(t, err)
}
