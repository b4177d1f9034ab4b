package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FlavorRepository реализует domain.FlavorRepository
type FlavorRepository struct {
	db DBTX
}

// NewFlavorRepository создает новый FlavorRepository
func NewFlavorRepository(db DBTX) *FlavorRepository {
	return &FlavorRepository{db: db}
}

// ListFlavors возвращает весь каталог
func (r *FlavorRepository) ListFlavors(ctx context.Context) ([]*domain.Flavor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id_sabor, nombre, precio, stock
		 FROM sabores
		 ORDER BY id_sabor`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list flavors: %w", err)
	}
	defer rows.Close()

	var flavors []*domain.Flavor
	for rows.Next() {
		flavor := &domain.Flavor{}
		err := rows.Scan(&flavor.ID, &flavor.Name, &flavor.Price, &flavor.Stock)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan flavor: %w", err)
		}
		flavors = append(flavors, flavor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating flavors: %w", err)
	}

	return flavors, nil
}

// CreateFlavor добавляет новую позицию каталога
func (r *FlavorRepository) CreateFlavor(ctx context.Context, name string, price decimal.Decimal, stock int) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx,
		`INSERT INTO sabores (nombre, precio, stock)
		 VALUES ($1, $2, $3)
		 RETURNING id_sabor`,
		name, price, stock,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to create flavor %q: %w", name, err)
	}

	return id, nil
}

// GetFlavorByID получает позицию каталога по ID
func (r *FlavorRepository) GetFlavorByID(ctx context.Context, id int64) (*domain.Flavor, error) {
	flavor := &domain.Flavor{}

	err := r.db.QueryRow(ctx,
		`SELECT id_sabor, nombre, precio, stock
		 FROM sabores
		 WHERE id_sabor = $1`,
		id,
	).Scan(&flavor.ID, &flavor.Name, &flavor.Price, &flavor.Stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlavorNotFound
		}
		return nil, fmt.Errorf("repository: failed to get flavor by id %d: %w", id, err)
	}

	return flavor, nil
}
