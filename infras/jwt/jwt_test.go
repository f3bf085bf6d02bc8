package jwt_test

import (
	"hotel/config"
	"hotel/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair(jwt.Subject{
		EmployeeID:  "e1",
		Username:    "frontdesk",
		Post:        "receptionist",
		Permissions: []string{"booking:create", "booking:read"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "e1", claims.EmployeeID())
	assert.Equal(t, "frontdesk", claims.Username)
	assert.Equal(t, []string{"booking:create", "booking:read"}, claims.Permissions)

	refresh, err := svc.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, refresh.Permissions)
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair(jwt.Subject{EmployeeID: "e1", Username: "frontdesk"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)
}
