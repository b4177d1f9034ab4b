package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/marcianos-loyalty/internal/domain"
	domainmocks "github.com/avc/marcianos-loyalty/internal/domain/mocks"
	"github.com/avc/marcianos-loyalty/internal/utils/jwt"
	"github.com/avc/marcianos-loyalty/internal/utils/password"
	passwordmocks "github.com/avc/marcianos-loyalty/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, AuthServiceConfig{MinPasswordLength: 6})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		passwordHash := "hashed_password"
		user := &domain.User{ID: 1, Name: "Ana", Email: "ana@example.com", Role: "cliente"}

		mockHasher.EXPECT().Hash("password123").Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "Ana", "ana@example.com", passwordHash, "timbre 2B").Return(user, nil).Once()

		err := svc.Register(ctx, "Ana", "ana@example.com", "password123", "timbre 2B")
		require.NoError(t, err)
	})

	t.Run("Empty name", func(t *testing.T) {
		err := svc.Register(ctx, "", "ana@example.com", "password123", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Invalid email", func(t *testing.T) {
		err := svc.Register(ctx, "Ana", "no-es-correo", "password123", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Password too short", func(t *testing.T) {
		err := svc.Register(ctx, "Ana", "ana@example.com", "123", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("", errors.New("hash error")).Once()

		err := svc.Register(ctx, "Ana", "ana@example.com", "password123", "")
		assert.Error(t, err)
	})

	t.Run("User already exists", func(t *testing.T) {
		passwordHash := "hashed_password"

		mockHasher.EXPECT().Hash("password123").Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "Ana", "ana@example.com", passwordHash, "").Return(nil, domain.ErrUserExists).Once()

		err := svc.Register(ctx, "Ana", "ana@example.com", "password123", "")
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("Database error", func(t *testing.T) {
		passwordHash := "hashed_password"

		mockHasher.EXPECT().Hash("password123").Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "Ana", "ana@example.com", passwordHash, "").Return(nil, errors.New("database error")).Once()

		err := svc.Register(ctx, "Ana", "ana@example.com", "password123", "")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, AuthServiceConfig{MinPasswordLength: 6})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: 1, Email: "ana@example.com", PasswordHash: "hash", Role: "cliente"}

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hash", "password123").Return(nil).Once()

		token, err := svc.Login(ctx, "ana@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "cliente", claims.Role)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, token)
	})

	t.Run("Unknown user maps to invalid credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "nadie@example.com").Return(nil, domain.ErrUserNotFound).Once()

		token, err := svc.Login(ctx, "nadie@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		user := &domain.User{ID: 1, Email: "ana@example.com", PasswordHash: "hash"}

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hash", "wrong").Return(password.ErrMismatch).Once()

		token, err := svc.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").Return(nil, errors.New("database error")).Once()

		token, err := svc.Login(ctx, "ana@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
