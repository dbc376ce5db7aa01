package auth_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivChilu/fresh-meat/internal/auth"
)

func TestTokenManager_MintAndVerify(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	id, err := uuid.NewV4()
	require.NoError(t, err)

	token, err := m.Mint(id, auth.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, auth.RoleCustomer, claims.Role)

	parsed, err := claims.ParseUserID()
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestTokenManager_VerifyRejectsBadTokens(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)
	expired := auth.NewTokenManager("test-secret", -time.Minute)

	id, err := uuid.NewV4()
	require.NoError(t, err)

	wrongSecret, err := other.Mint(id, auth.RoleCustomer)
	require.NoError(t, err)

	expiredToken, err := expired.Mint(id, auth.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong_secret", token: wrongSecret},
		{name: "expired", token: expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}
