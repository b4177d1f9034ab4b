package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает нового пользователя с ролью cliente
func (r *UserRepository) CreateUser(ctx context.Context, name, email, passwordHash, deliveryNotes string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, correo, password_hash, instrucciones_entrega, rol)
		 VALUES ($1, $2, $3, $4, 'cliente')
		 RETURNING id_usuario, nombre, correo, password_hash, rol, instrucciones_entrega, puntos_acumulados, fecha_registro`,
		name, email, passwordHash, deliveryNotes,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.DeliveryNotes, &user.Points, &user.RegisteredAt)

	if err != nil {
		// Проверка на уникальность почты (код ошибки PostgreSQL)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", email, err)
	}

	return user, nil
}

// GetUserByEmail получает пользователя по адресу почты
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id_usuario, nombre, correo, password_hash, rol, instrucciones_entrega, puntos_acumulados, fecha_registro
		 FROM usuarios
		 WHERE correo = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.DeliveryNotes, &user.Points, &user.RegisteredAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by email %q: %w", email, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id_usuario, nombre, correo, password_hash, rol, instrucciones_entrega, puntos_acumulados, fecha_registro
		 FROM usuarios
		 WHERE id_usuario = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.DeliveryNotes, &user.Points, &user.RegisteredAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}
