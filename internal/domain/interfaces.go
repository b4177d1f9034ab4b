package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash, deliveryNotes string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// FlavorRepository определяет методы для работы с каталогом
type FlavorRepository interface {
	ListFlavors(ctx context.Context) ([]*Flavor, error)
	CreateFlavor(ctx context.Context, name string, price decimal.Decimal, stock int) (int64, error)
	GetFlavorByID(ctx context.Context, id int64) (*Flavor, error)
}

// OrderRepository определяет методы для работы с заказами.
// CreateOrder, RedeemOrder и UpdateOrderStatus выполняются каждый
// в одной атомарной транзакции БД.
type OrderRepository interface {
	CreateOrder(ctx context.Context, userID int64, items []OrderItem) (int64, error)
	RedeemOrder(ctx context.Context, userID, flavorID int64) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status OrderStatus) (int, error)
	GetOrderLinesByUserID(ctx context.Context, userID int64) ([]*OrderLineRow, error)
	GetAllOrderLines(ctx context.Context) ([]*OrderLineRow, error)
}

// StockRepository определяет методы для журнала движений стока
type StockRepository interface {
	RecordMovement(ctx context.Context, flavorID int64, quantity int, movementType MovementType) (int64, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, name, email, password, deliveryNotes string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// OrderService определяет операции заказов, канжей и баллов
type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, items []OrderItem) (int64, error)
	Redeem(ctx context.Context, userID, flavorID int64) error
	ChangeStatus(ctx context.Context, orderID int64, status OrderStatus) (int, error)
	GetHistory(ctx context.Context, userID int64) ([]*HistoryEntry, error)
	GetGroupedOrders(ctx context.Context, userID int64) ([]*GroupedOrder, error)
	GetAllOrders(ctx context.Context) ([]*GroupedOrder, error)
	GetPoints(ctx context.Context, userID int64) (*PointsSummary, error)
}

// CatalogService определяет операции каталога и пополнения стока
type CatalogService interface {
	ListFlavors(ctx context.Context) ([]*Flavor, error)
	AddFlavor(ctx context.Context, name string, price decimal.Decimal, stock int) (int64, error)
	Restock(ctx context.Context, flavorID int64, quantity int) error
}

// StockService определяет операции журнала движений
type StockService interface {
	RecordMovement(ctx context.Context, flavorID int64, quantity int, movementType MovementType) (int64, error)
}

// OrderNotifier рассылает событие о новом заказе подписчикам
type OrderNotifier interface {
	NotifyOrderCreated(orderID, userID int64)
}
