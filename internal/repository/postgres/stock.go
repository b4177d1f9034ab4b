package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
)

// StockRepository реализует domain.StockRepository
type StockRepository struct {
	db DBTX
}

// NewStockRepository создает новый StockRepository
func NewStockRepository(db DBTX) *StockRepository {
	return &StockRepository{db: db}
}

// RecordMovement добавляет запись в журнал движений и применяет дельту
// к стоку в одной транзакции. ingreso и ajuste увеличивают сток,
// venta и canje уменьшают; уход в минус не допускается.
func (r *StockRepository) RecordMovement(ctx context.Context, flavorID int64, quantity int, movementType domain.MovementType) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction for flavor %d: %w", flavorID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock
		 FROM sabores
		 WHERE id_sabor = $1
		 FOR UPDATE`,
		flavorID,
	).Scan(&stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrFlavorNotFound
		}
		return 0, fmt.Errorf("repository: failed to lock flavor %d: %w", flavorID, err)
	}

	delta := quantity
	if movementType.Outflow() {
		if stock < quantity {
			return 0, domain.ErrInsufficientStock
		}
		delta = -quantity
	}

	var movementID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO movimientos_stock (id_sabor, cantidad, tipo)
		 VALUES ($1, $2, $3)
		 RETURNING id_movimiento`,
		flavorID, quantity, movementType,
	).Scan(&movementID)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to record movement for flavor %d: %w", flavorID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE sabores
		 SET stock = stock + $1
		 WHERE id_sabor = $2`,
		delta, flavorID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to apply stock delta for flavor %d: %w", flavorID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit movement for flavor %d: %w", flavorID, err)
	}

	return movementID, nil
}
