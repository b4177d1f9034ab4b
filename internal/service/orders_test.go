package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/marcianos-loyalty/internal/domain"
	domainmocks "github.com/avc/marcianos-loyalty/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Success notifies subscribers", func(t *testing.T) {
		userID := int64(1)
		orderID := int64(42)
		items := []domain.OrderItem{{FlavorID: 7, Quantity: 2}}

		mockOrderRepo.EXPECT().CreateOrder(mock.Anything, userID, items).Return(orderID, nil).Once()
		mockNotifier.EXPECT().NotifyOrderCreated(orderID, userID).Once()

		got, err := svc.PlaceOrder(ctx, userID, items)
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})

	t.Run("Empty items", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, int64(1), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, int64(1), []domain.OrderItem{{FlavorID: 7, Quantity: 0}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Active order passes through without notification", func(t *testing.T) {
		userID := int64(1)
		items := []domain.OrderItem{{FlavorID: 7, Quantity: 1}}

		mockOrderRepo.EXPECT().CreateOrder(mock.Anything, userID, items).Return(int64(0), domain.ErrOrderInFlight).Once()

		_, err := svc.PlaceOrder(ctx, userID, items)
		assert.ErrorIs(t, err, domain.ErrOrderInFlight)
	})

	t.Run("Insufficient stock passes through", func(t *testing.T) {
		userID := int64(1)
		items := []domain.OrderItem{{FlavorID: 7, Quantity: 5}}

		mockOrderRepo.EXPECT().CreateOrder(mock.Anything, userID, items).Return(int64(0), domain.ErrInsufficientStock).Once()

		_, err := svc.PlaceOrder(ctx, userID, items)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})
}

func TestOrderService_Redeem(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockOrderRepo.EXPECT().RedeemOrder(mock.Anything, int64(1), int64(7)).Return(int64(55), nil).Once()

		err := svc.Redeem(ctx, 1, 7)
		assert.NoError(t, err)
	})

	t.Run("Insufficient points passes through", func(t *testing.T) {
		mockOrderRepo.EXPECT().RedeemOrder(mock.Anything, int64(1), int64(7)).Return(int64(0), domain.ErrInsufficientPoints).Once()

		err := svc.Redeem(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	})

	t.Run("Database error is wrapped", func(t *testing.T) {
		mockOrderRepo.EXPECT().RedeemOrder(mock.Anything, int64(1), int64(7)).Return(int64(0), errors.New("database error")).Once()

		err := svc.Redeem(ctx, 1, 7)
		assert.Error(t, err)
	})
}

func TestOrderService_ChangeStatus(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockOrderRepo.EXPECT().UpdateOrderStatus(mock.Anything, int64(42), domain.OrderStatusCompleted).Return(3, nil).Once()

		credited, err := svc.ChangeStatus(ctx, 42, domain.OrderStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, 3, credited)
	})

	t.Run("Unknown status", func(t *testing.T) {
		_, err := svc.ChangeStatus(ctx, 42, domain.OrderStatus("enviado"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Already finalized passes through", func(t *testing.T) {
		mockOrderRepo.EXPECT().UpdateOrderStatus(mock.Anything, int64(42), domain.OrderStatusCompleted).Return(0, domain.ErrOrderFinalized).Once()

		_, err := svc.ChangeStatus(ctx, 42, domain.OrderStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrOrderFinalized)
	})

	t.Run("Order not found passes through", func(t *testing.T) {
		mockOrderRepo.EXPECT().UpdateOrderStatus(mock.Anything, int64(404), domain.OrderStatusCancelled).Return(0, domain.ErrOrderNotFound).Once()

		_, err := svc.ChangeStatus(ctx, 404, domain.OrderStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_GetHistory(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Success computes subtotals", func(t *testing.T) {
		now := time.Now()
		rows := []*domain.OrderLineRow{
			{OrderID: 2, Date: now, Status: domain.OrderStatusPending, FlavorName: "Fresa", Quantity: 2, UnitPrice: decimal.NewFromFloat(25.50)},
			{OrderID: 1, Date: now, Status: domain.OrderStatusCompleted, IsRedemption: true, FlavorName: "Limon", Quantity: 1, UnitPrice: decimal.Zero},
		}

		mockOrderRepo.EXPECT().GetOrderLinesByUserID(mock.Anything, int64(1)).Return(rows, nil).Once()

		history, err := svc.GetHistory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].Subtotal.Equal(decimal.NewFromFloat(51.00)))
		assert.True(t, history[1].IsRedemption)
		assert.True(t, history[1].Subtotal.IsZero())
	})

	t.Run("Empty history", func(t *testing.T) {
		mockOrderRepo.EXPECT().GetOrderLinesByUserID(mock.Anything, int64(999)).Return(nil, nil).Once()

		history, err := svc.GetHistory(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestOrderService_GetGroupedOrders(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Lines collapse into orders with totals", func(t *testing.T) {
		now := time.Now()
		rows := []*domain.OrderLineRow{
			{OrderID: 2, Date: now, Status: domain.OrderStatusPending, FlavorName: "Fresa", Quantity: 2, UnitPrice: decimal.NewFromFloat(25.50)},
			{OrderID: 2, Date: now, Status: domain.OrderStatusPending, FlavorName: "Limon", Quantity: 1, UnitPrice: decimal.NewFromFloat(20.00)},
			{OrderID: 1, Date: now, Status: domain.OrderStatusCompleted, FlavorName: "Mango", Quantity: 1, UnitPrice: decimal.NewFromFloat(30.00)},
		}

		mockOrderRepo.EXPECT().GetOrderLinesByUserID(mock.Anything, int64(1)).Return(rows, nil).Once()

		orders, err := svc.GetGroupedOrders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, int64(2), orders[0].OrderID)
		require.Len(t, orders[0].Lines, 2)
		assert.True(t, orders[0].Total.Equal(decimal.NewFromFloat(71.00)))

		assert.Equal(t, int64(1), orders[1].OrderID)
		assert.True(t, orders[1].Total.Equal(decimal.NewFromFloat(30.00)))
	})

	t.Run("Repository error", func(t *testing.T) {
		mockOrderRepo.EXPECT().GetOrderLinesByUserID(mock.Anything, int64(1)).Return(nil, errors.New("database error")).Once()

		orders, err := svc.GetGroupedOrders(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	t.Run("Keeps client name per order", func(t *testing.T) {
		now := time.Now()
		rows := []*domain.OrderLineRow{
			{OrderID: 3, Date: now, Status: domain.OrderStatusRedeem, IsRedemption: true, UserName: "Ana", FlavorName: "Mango", Quantity: 1, UnitPrice: decimal.Zero},
		}

		mockOrderRepo.EXPECT().GetAllOrderLines(mock.Anything).Return(rows, nil).Once()

		orders, err := svc.GetAllOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Ana", orders[0].UserName)
		assert.True(t, orders[0].IsRedemption)
	})
}

func TestOrderService_GetPoints(t *testing.T) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockNotifier := domainmocks.NewOrderNotifierMock(t)
	svc := NewOrderService(mockOrderRepo, mockUserRepo, mockNotifier)
	ctx := context.Background()

	tests := []struct {
		name          string
		points        int
		wantAvailable int
		wantToNext    int
	}{
		{name: "Zero points", points: 0, wantAvailable: 0, wantToNext: 10},
		{name: "Below threshold", points: 8, wantAvailable: 0, wantToNext: 2},
		{name: "Exact threshold", points: 10, wantAvailable: 1, wantToNext: 0},
		{name: "Above threshold", points: 15, wantAvailable: 1, wantToNext: 5},
		{name: "Several redemptions", points: 32, wantAvailable: 3, wantToNext: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{ID: 1, Name: "Ana", Points: tt.points}

			mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(user, nil).Once()

			summary, err := svc.GetPoints(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, "Ana", summary.Name)
			assert.Equal(t, tt.points, summary.Total)
			assert.Equal(t, tt.wantAvailable, summary.Available)
			assert.Equal(t, tt.wantToNext, summary.ToNext)
		})
	}

	t.Run("User not found passes through", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(mock.Anything, int64(404)).Return(nil, domain.ErrUserNotFound).Once()

		summary, err := svc.GetPoints(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, summary)
	})
}
