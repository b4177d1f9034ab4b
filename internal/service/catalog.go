package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/avc/marcianos-loyalty/internal/utils/validate"
	"github.com/shopspring/decimal"
)

// decimalFromInt переводит количество в decimal для расчета сумм
func decimalFromInt(quantity int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity))
}

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	flavorRepo domain.FlavorRepository
	stockRepo  domain.StockRepository
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(flavorRepo domain.FlavorRepository, stockRepo domain.StockRepository) *CatalogService {
	return &CatalogService{
		flavorRepo: flavorRepo,
		stockRepo:  stockRepo,
	}
}

// ListFlavors возвращает весь каталог
func (s *CatalogService) ListFlavors(ctx context.Context) ([]*domain.Flavor, error) {
	flavors, err := s.flavorRepo.ListFlavors(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list flavors: %w", err)
	}

	return flavors, nil
}

// AddFlavor добавляет новую позицию каталога
func (s *CatalogService) AddFlavor(ctx context.Context, name string, price decimal.Decimal, stock int) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return 0, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if stock < 0 {
		return 0, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}

	id, err := s.flavorRepo.CreateFlavor(ctx, name, price, stock)
	if err != nil {
		return 0, fmt.Errorf("catalog service: failed to add flavor %q: %w", name, err)
	}

	return id, nil
}

// Restock увеличивает сток позиции и фиксирует движение типа ingreso
func (s *CatalogService) Restock(ctx context.Context, flavorID int64, quantity int) error {
	if !validate.Quantity(quantity) {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}

	_, err := s.stockRepo.RecordMovement(ctx, flavorID, quantity, domain.MovementInflow)
	if err != nil {
		if errors.Is(err, domain.ErrFlavorNotFound) {
			return err
		}
		return fmt.Errorf("catalog service: failed to restock flavor %d: %w", flavorID, err)
	}

	return nil
}
