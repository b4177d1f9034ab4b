package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/avc/marcianos-loyalty/internal/utils/jwt"
	"github.com/avc/marcianos-loyalty/internal/utils/password"
	"github.com/avc/marcianos-loyalty/internal/utils/validate"
)

// AuthServiceConfig параметры валидации аутентификации
type AuthServiceConfig struct {
	MinPasswordLength int
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	config         AuthServiceConfig
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	config AuthServiceConfig,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		config:         config,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, name, email, userPassword, deliveryNotes string) error {
	// Валидация входных данных
	if name == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if !validate.Email(email) {
		return fmt.Errorf("%w: el correo debe ser valido", domain.ErrInvalidInput)
	}
	if len(userPassword) < s.config.MinPasswordLength {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, s.config.MinPasswordLength)
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return fmt.Errorf("auth service: failed to hash password for user %q: %w", email, err)
	}

	// Создание пользователя
	_, err = s.userRepo.CreateUser(ctx, name, email, hash, deliveryNotes)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return err
		}
		return fmt.Errorf("auth service: failed to register user %q: %w", email, err)
	}

	return nil
}

// Login аутентифицирует пользователя и возвращает JWT токен
func (s *AuthService) Login(ctx context.Context, email, userPassword string) (string, error) {
	// Валидация входных данных
	if email == "" || userPassword == "" {
		return "", fmt.Errorf("%w: empty email or password", domain.ErrInvalidInput)
	}

	// Получение пользователя по почте
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", email, err)
	}

	// Проверка пароля
	err = s.passwordHasher.Check(user.PasswordHash, userPassword)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}
