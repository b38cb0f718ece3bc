package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42, "priya@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "each token carries a unique ID")
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(1, "priya@example.com", "user")
	require.NoError(t, err)

	claims, err := other.Verify(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(1, "priya@example.com", "user")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Empty string", token: ""},
		{name: "Not a JWT", token: "not-a-token"},
		{name: "Truncated JWT", token: "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjo0Mn0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	first, err := issuer.Issue(1, "priya@example.com", "user")
	require.NoError(t, err)
	second, err := issuer.Issue(1, "priya@example.com", "user")
	require.NoError(t, err)

	firstClaims, err := issuer.Verify(first)
	require.NoError(t, err)
	secondClaims, err := issuer.Verify(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
