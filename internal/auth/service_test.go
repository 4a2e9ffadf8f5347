package auth

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupService(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}

	return NewService(NewRepository(db), cfg)
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Sasha",
		LastName:  "Semenenko",
		Email:     "sasha@test.local",
		Password:  "qwerty",
	}
}

func TestRegisterIssuesTokens(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	resp, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "sasha@test.local", resp.User.Email)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := service.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := service.Login(ctx, &LoginRequest{Email: "sasha@test.local", Password: "qwerty"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = service.Login(ctx, &LoginRequest{Email: "sasha@test.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, &LoginRequest{Email: "nobody@test.local", Password: "qwerty"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	pair, err := service.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// An access token is not accepted on the refresh path
	_, err = service.RefreshToken(ctx, registered.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	err = service.ChangePassword(ctx, registered.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "stronger",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = service.ChangePassword(ctx, registered.User.ID, &ChangePasswordRequest{
		CurrentPassword: "qwerty",
		NewPassword:     "stronger",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &LoginRequest{Email: "sasha@test.local", Password: "stronger"})
	require.NoError(t, err)
}
