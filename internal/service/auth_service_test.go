package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/svj-dojo/bellwall-api/internal/models"
	"github.com/svj-dojo/bellwall-api/pkg/config"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(config.AuthConfig{
		JWTSecret:         "test_secret",
		TokenExpiry:       time.Hour,
		AdminPasswordHash: string(hash),
	}, nil, nil)
}

func TestAuthServiceLoginAndValidate(t *testing.T) {
	svc := newTestAuthService(t, "osu")

	res, err := svc.Login(models.LoginRequest{Password: "osu"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "osu")

	_, err := svc.Login(models.LoginRequest{Password: "nope"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginMissingPassword(t *testing.T) {
	svc := newTestAuthService(t, "osu")

	_, err := svc.Login(models.LoginRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAuthServiceRejectsForeignToken(t *testing.T) {
	issuer := newTestAuthService(t, "osu")
	verifier := NewAuthService(config.AuthConfig{
		JWTSecret:   "different_secret",
		TokenExpiry: time.Hour,
	}, nil, nil)

	res, err := issuer.Login(models.LoginRequest{Password: "osu"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(res.AccessToken)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestAuthServiceRejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService(t, "osu")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
