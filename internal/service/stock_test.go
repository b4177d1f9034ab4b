package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/marcianos-loyalty/internal/domain"
	domainmocks "github.com/avc/marcianos-loyalty/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStockService_RecordMovement(t *testing.T) {
	mockStockRepo := domainmocks.NewStockRepositoryMock(t)
	svc := NewStockService(mockStockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockStockRepo.EXPECT().RecordMovement(mock.Anything, int64(1), 5, domain.MovementAdjustment).Return(int64(77), nil).Once()

		id, err := svc.RecordMovement(ctx, 1, 5, domain.MovementAdjustment)
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
	})

	t.Run("Unknown movement type", func(t *testing.T) {
		_, err := svc.RecordMovement(ctx, 1, 5, domain.MovementType("regalo"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Non-positive quantity", func(t *testing.T) {
		_, err := svc.RecordMovement(ctx, 1, 0, domain.MovementSale)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Insufficient stock passes through", func(t *testing.T) {
		mockStockRepo.EXPECT().RecordMovement(mock.Anything, int64(1), 50, domain.MovementSale).Return(int64(0), domain.ErrInsufficientStock).Once()

		_, err := svc.RecordMovement(ctx, 1, 50, domain.MovementSale)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("Database error is wrapped", func(t *testing.T) {
		mockStockRepo.EXPECT().RecordMovement(mock.Anything, int64(1), 5, domain.MovementInflow).Return(int64(0), errors.New("database error")).Once()

		_, err := svc.RecordMovement(ctx, 1, 5, domain.MovementInflow)
		assert.Error(t, err)
	})
}
