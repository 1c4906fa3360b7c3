package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueAndVerify(t *testing.T) {
	tokens := New("test-secret-key", time.Hour)

	tokenString, err := tokens.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := tokens.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestService_Issue_ClaimsShape(t *testing.T) {
	tokens := New("test-secret-key", time.Hour)

	tokenString, err := tokens.Issue("user-123")
	require.NoError(t, err)

	// the payload carries the identifier nested as {"user":{"id":...}}
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	user, ok := claims["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-123", user["id"])

	assert.Contains(t, claims, "iat")
	assert.Contains(t, claims, "exp")
}

func TestService_Verify_Expired(t *testing.T) {
	tokens := New("test-secret-key", -time.Minute)

	tokenString, err := tokens.Issue("user-123")
	require.NoError(t, err)

	userID, err := tokens.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, userID)
}

func TestService_Verify_UniformRejection(t *testing.T) {
	tokens := New("test-secret-key", time.Hour)
	otherSecret := New("another-secret", time.Hour)
	expired := New("test-secret-key", -time.Minute)

	tampered, err := otherSecret.Issue("user-123")
	require.NoError(t, err)

	expiredToken, err := expired.Issue("user-123")
	require.NoError(t, err)

	// malformed, tampered and expired all collapse to the same error value
	for _, tokenString := range []string{"", "not.a.token", tampered, expiredToken} {
		_, err := tokens.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestService_Verify_MissingUserClaim(t *testing.T) {
	tokens := New("test-secret-key", time.Hour)

	// a well signed token without the expected claims shape is still rejected
	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = tokens.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Issue_NotByteIdentical(t *testing.T) {
	tokens := New("test-secret-key", time.Hour)

	first, err := tokens.Issue("user-123")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	second, err := tokens.Issue("user-123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
