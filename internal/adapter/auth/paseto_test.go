package auth

import (
	"testing"
	"time"

	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := New(&config.Token{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		user    domain.User
		expRole domain.Role
	}{
		{name: "admin", user: domain.User{ID: 1, Role: domain.RoleAdmin}, expRole: domain.RoleAdmin},
		{name: "role defaults to user", user: domain.User{ID: 2}, expRole: domain.RoleUser},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			token, err := ts.CreateToken(&test.user)
			require.NoError(t, err)

			payload, err := ts.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, test.user.ID, payload.UserID)
			assert.Equal(t, test.expRole, payload.Role)
		})
	}
}

func TestPasetoToken_SharedKey(t *testing.T) {
	issuer, err := New(&config.Token{})
	require.NoError(t, err)

	verifier, err := New(&config.Token{KeyHex: issuer.KeyHex()})
	require.NoError(t, err)

	token, err := issuer.CreateToken(&domain.User{ID: 5})
	require.NoError(t, err)

	payload, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), payload.UserID)

	stranger, err := New(&config.Token{})
	require.NoError(t, err)
	_, err = stranger.VerifyToken(token)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestPasetoToken_Rejects(t *testing.T) {
	_, err := New(&config.Token{KeyHex: "not-hex"})
	assert.Error(t, err)

	ts, err := New(&config.Token{TTL: time.Nanosecond})
	require.NoError(t, err)
	token, err := ts.CreateToken(&domain.User{ID: 1})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = ts.VerifyToken(token)
	assert.Equal(t, domain.ErrInvalidToken, err)

	_, err = ts.VerifyToken("v4.local.garbage")
	assert.Equal(t, domain.ErrInvalidToken, err)
}
