package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/marcianos-loyalty/internal/domain"
	domainmocks "github.com/avc/marcianos-loyalty/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListFlavors(t *testing.T) {
	mockFlavorRepo := domainmocks.NewFlavorRepositoryMock(t)
	mockStockRepo := domainmocks.NewStockRepositoryMock(t)
	svc := NewCatalogService(mockFlavorRepo, mockStockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		flavors := []*domain.Flavor{
			{ID: 1, Name: "Fresa", Price: decimal.NewFromFloat(25.50), Stock: 10},
			{ID: 2, Name: "Limon", Price: decimal.NewFromFloat(20.00), Stock: 0},
		}

		mockFlavorRepo.EXPECT().ListFlavors(mock.Anything).Return(flavors, nil).Once()

		got, err := svc.ListFlavors(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockFlavorRepo.EXPECT().ListFlavors(mock.Anything).Return(nil, errors.New("database error")).Once()

		got, err := svc.ListFlavors(ctx)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_AddFlavor(t *testing.T) {
	mockFlavorRepo := domainmocks.NewFlavorRepositoryMock(t)
	mockStockRepo := domainmocks.NewStockRepositoryMock(t)
	svc := NewCatalogService(mockFlavorRepo, mockStockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		price := decimal.NewFromFloat(25.50)

		mockFlavorRepo.EXPECT().CreateFlavor(mock.Anything, "Fresa", price, 10).Return(int64(1), nil).Once()

		id, err := svc.AddFlavor(ctx, "Fresa", price, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := svc.AddFlavor(ctx, "", decimal.NewFromInt(10), 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Negative price", func(t *testing.T) {
		_, err := svc.AddFlavor(ctx, "Fresa", decimal.NewFromInt(-1), 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Negative stock", func(t *testing.T) {
		_, err := svc.AddFlavor(ctx, "Fresa", decimal.NewFromInt(10), -5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCatalogService_Restock(t *testing.T) {
	mockFlavorRepo := domainmocks.NewFlavorRepositoryMock(t)
	mockStockRepo := domainmocks.NewStockRepositoryMock(t)
	svc := NewCatalogService(mockFlavorRepo, mockStockRepo)
	ctx := context.Background()

	t.Run("Success records inflow movement", func(t *testing.T) {
		mockStockRepo.EXPECT().RecordMovement(mock.Anything, int64(1), 10, domain.MovementInflow).Return(int64(77), nil).Once()

		err := svc.Restock(ctx, 1, 10)
		assert.NoError(t, err)
	})

	t.Run("Non-positive quantity", func(t *testing.T) {
		err := svc.Restock(ctx, 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Flavor not found passes through", func(t *testing.T) {
		mockStockRepo.EXPECT().RecordMovement(mock.Anything, int64(404), 10, domain.MovementInflow).Return(int64(0), domain.ErrFlavorNotFound).Once()

		err := svc.Restock(ctx, 404, 10)
		assert.ErrorIs(t, err, domain.ErrFlavorNotFound)
	})
}
