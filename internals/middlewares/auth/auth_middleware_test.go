package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenExpiry(t *testing.T) {
	future := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
	assert.NoError(t, validateTokenExpiry(future, 0))

	past := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Hour).Unix())}
	assert.Error(t, validateTokenExpiry(past, 0))

	// just-expired tokens survive inside the leeway window
	justExpired := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
	assert.NoError(t, validateTokenExpiry(justExpired, 30*time.Second))

	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"sub": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractUserID(jwt.MapClaims{"sub": "not-a-uuid"})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)
}
