package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-manager-be/apperr"
	"finance-manager-be/models"
	"finance-manager-be/repositories"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db), testSecret, time.Hour, testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.Equal(t, "alice", reg.User.Username)
	assert.Equal(t, "user", reg.User.Role)

	login, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	req := &models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "hunter22"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestIssuedTokenCarriesSubject(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(reg.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, reg.User.ID, claims["sub"])
	assert.Equal(t, "user", claims["role"])
	assert.NotEmpty(t, claims["jti"])
}
