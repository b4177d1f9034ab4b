package service

import (
	"context"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/avc/marcianos-loyalty/internal/utils/validate"
)

// StockService реализует domain.StockService
type StockService struct {
	stockRepo domain.StockRepository
}

// NewStockService создает новый StockService
func NewStockService(stockRepo domain.StockRepository) *StockService {
	return &StockService{
		stockRepo: stockRepo,
	}
}

// RecordMovement фиксирует ручное движение стока
func (s *StockService) RecordMovement(ctx context.Context, flavorID int64, quantity int, movementType domain.MovementType) (int64, error) {
	if !movementType.Valid() {
		return 0, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, movementType)
	}
	if !validate.Quantity(quantity) {
		return 0, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}

	movementID, err := s.stockRepo.RecordMovement(ctx, flavorID, quantity, movementType)
	if err != nil {
		if isSentinel(err) {
			return 0, err
		}
		return 0, fmt.Errorf("stock service: failed to record movement for flavor %d: %w", flavorID, err)
	}

	return movementID, nil
}
