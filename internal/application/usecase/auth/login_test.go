package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authUC "portfolio-api/internal/application/usecase/auth"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/logger"
)

func newLoginUC(t *testing.T, email, password string) *authUC.LoginUseCase {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return authUC.NewLoginUseCase(email, hash, jwtSvc, logger.NewNop())
}

func TestLogin_Success(t *testing.T) {
	uc := newLoginUC(t, "admin@example.com", "correct horse battery staple")

	out, err := uc.Execute(context.Background(), authUC.LoginInput{
		Email:    "admin@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)

	claims, err := auth.NewJWTService("test-secret", time.Hour).ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newLoginUC(t, "admin@example.com", "correct horse battery staple")

	_, err := uc.Execute(context.Background(), authUC.LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newLoginUC(t, "admin@example.com", "correct horse battery staple")

	_, err := uc.Execute(context.Background(), authUC.LoginInput{
		Email:    "intruder@example.com",
		Password: "correct horse battery staple",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}
