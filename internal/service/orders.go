package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/avc/marcianos-loyalty/internal/utils/validate"
)

// sentinelErrs ошибки бизнес-правил, которые отдаются вызывающему как есть
var sentinelErrs = []error{
	domain.ErrOrderInFlight,
	domain.ErrOrderNotFound,
	domain.ErrOrderFinalized,
	domain.ErrFlavorNotFound,
	domain.ErrUserNotFound,
	domain.ErrInsufficientStock,
	domain.ErrInsufficientPoints,
}

func isSentinel(err error) bool {
	for _, sentinel := range sentinelErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// OrderService реализует domain.OrderService
type OrderService struct {
	orderRepo domain.OrderRepository
	userRepo  domain.UserRepository
	notifier  domain.OrderNotifier
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	notifier domain.OrderNotifier,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// PlaceOrder оформляет покупку и рассылает событие подписчикам
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, items []domain.OrderItem) (int64, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: el pedido no tiene productos", domain.ErrInvalidInput)
	}
	for _, item := range items {
		if !validate.Quantity(item.Quantity) {
			return 0, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
		}
	}

	orderID, err := s.orderRepo.CreateOrder(ctx, userID, items)
	if err != nil {
		if isSentinel(err) {
			return 0, err
		}
		return 0, fmt.Errorf("order service: failed to place order for user %d: %w", userID, err)
	}

	// Best-effort уведомление, результат заказа от него не зависит
	s.notifier.NotifyOrderCreated(orderID, userID)

	return orderID, nil
}

// Redeem обменивает накопленные баллы на одну единицу выбранного сабора
func (s *OrderService) Redeem(ctx context.Context, userID, flavorID int64) error {
	_, err := s.orderRepo.RedeemOrder(ctx, userID, flavorID)
	if err != nil {
		if isSentinel(err) {
			return err
		}
		return fmt.Errorf("order service: failed to redeem for user %d: %w", userID, err)
	}

	return nil
}

// ChangeStatus переводит заказ в новый статус, возвращает начисленные баллы
func (s *OrderService) ChangeStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (int, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}

	credited, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		if isSentinel(err) {
			return 0, err
		}
		return 0, fmt.Errorf("order service: failed to change status of order %d: %w", orderID, err)
	}

	return credited, nil
}

// GetHistory возвращает плоскую историю покупок пользователя
func (s *OrderService) GetHistory(ctx context.Context, userID int64) ([]*domain.HistoryEntry, error) {
	rows, err := s.orderRepo.GetOrderLinesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get history for user %d: %w", userID, err)
	}

	history := make([]*domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, &domain.HistoryEntry{
			OrderID:      row.OrderID,
			Date:         row.Date,
			IsRedemption: row.IsRedemption,
			Flavor:       row.FlavorName,
			Quantity:     row.Quantity,
			Subtotal:     row.UnitPrice.Mul(decimalFromInt(row.Quantity)),
		})
	}

	return history, nil
}

// GetGroupedOrders возвращает заказы пользователя со вложенными строками
func (s *OrderService) GetGroupedOrders(ctx context.Context, userID int64) ([]*domain.GroupedOrder, error) {
	rows, err := s.orderRepo.GetOrderLinesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}

	return groupOrderLines(rows), nil
}

// GetAllOrders возвращает все заказы со вложенными строками и именем клиента
func (s *OrderService) GetAllOrders(ctx context.Context) ([]*domain.GroupedOrder, error) {
	rows, err := s.orderRepo.GetAllOrderLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get all orders: %w", err)
	}

	return groupOrderLines(rows), nil
}

// GetPoints возвращает баланс баллов с производными значениями:
// 10 баллов = 1 канж
func (s *OrderService) GetPoints(ctx context.Context, userID int64) (*domain.PointsSummary, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get points for user %d: %w", userID, err)
	}

	summary := &domain.PointsSummary{
		Name:      user.Name,
		Total:     user.Points,
		Available: user.Points / domain.RedemptionCost,
	}

	toNext := domain.RedemptionCost - user.Points%domain.RedemptionCost
	if summary.Available > 0 && toNext == domain.RedemptionCost {
		toNext = 0
	}
	summary.ToNext = toNext

	return summary, nil
}

// groupOrderLines сворачивает плоские строки в заказы с итогами,
// порядок заказов сохраняется
func groupOrderLines(rows []*domain.OrderLineRow) []*domain.GroupedOrder {
	grouped := make([]*domain.GroupedOrder, 0)
	index := make(map[int64]*domain.GroupedOrder)

	for _, row := range rows {
		order, ok := index[row.OrderID]
		if !ok {
			order = &domain.GroupedOrder{
				OrderID:      row.OrderID,
				Date:         row.Date,
				Status:       row.Status,
				IsRedemption: row.IsRedemption,
				UserName:     row.UserName,
				Lines:        make([]domain.GroupedOrderLine, 0, 1),
			}
			index[row.OrderID] = order
			grouped = append(grouped, order)
		}

		subtotal := row.UnitPrice.Mul(decimalFromInt(row.Quantity))
		order.Lines = append(order.Lines, domain.GroupedOrderLine{
			Flavor:    row.FlavorName,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
			Subtotal:  subtotal,
		})
		order.Total = order.Total.Add(subtotal)
	}

	return grouped
}
