package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id_usuario", "nombre", "correo", "password_hash", "rol", "instrucciones_entrega", "puntos_acumulados", "fecha_registro"}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Ana", "ana@example.com", "hash", "cliente", "timbre 2B", 0, time.Now())

		mock.ExpectQuery(`INSERT INTO usuarios`).
			WithArgs("Ana", "ana@example.com", "hash", "timbre 2B").
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, "Ana", "ana@example.com", "hash", "timbre 2B")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "cliente", user.Role)
		assert.Equal(t, 0, user.Points)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO usuarios`).
			WithArgs("Ana", "ana@example.com", "hash", "").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "Ana", "ana@example.com", "hash", "")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO usuarios`).
			WithArgs("Ana", "ana@example.com", "hash", "").
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "Ana", "ana@example.com", "hash", "")
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Ana", "ana@example.com", "hash", "cliente", "", 12, time.Now())

		mock.ExpectQuery(`SELECT id_usuario, nombre, correo`).
			WithArgs("ana@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, 12, user.Points)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id_usuario, nombre, correo`).
			WithArgs("nadie@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "nadie@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(7), "Luis", "luis@example.com", "hash", "admin", "", 3, time.Now())

		mock.ExpectQuery(`SELECT id_usuario, nombre, correo`).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id_usuario, nombre, correo`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
