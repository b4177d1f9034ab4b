package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendiente"
	OrderStatusCompleted OrderStatus = "completado"
	OrderStatusCancelled OrderStatus = "cancelado"
	OrderStatusUnpaid    OrderStatus = "porcobrar"
	OrderStatusRedeem    OrderStatus = "canje"
)

// Valid проверяет, что статус входит в допустимый набор
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled,
		OrderStatusUnpaid, OrderStatusRedeem:
		return true
	}
	return false
}

// Terminal сообщает, является ли статус конечным
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Live сообщает, считается ли заказ в этом статусе активным.
// У пользователя может быть не более одного активного заказа.
func (s OrderStatus) Live() bool {
	return s == OrderStatusPending || s == OrderStatusUnpaid || s == OrderStatusRedeem
}

// MovementType представляет тип движения стока
type MovementType string

const (
	MovementInflow     MovementType = "ingreso"
	MovementAdjustment MovementType = "ajuste"
	MovementSale       MovementType = "venta"
	MovementRedeem     MovementType = "canje"
)

// Valid проверяет, что тип движения входит в допустимый набор
func (t MovementType) Valid() bool {
	switch t {
	case MovementInflow, MovementAdjustment, MovementSale, MovementRedeem:
		return true
	}
	return false
}

// Outflow сообщает, уменьшает ли движение сток
func (t MovementType) Outflow() bool {
	return t == MovementSale || t == MovementRedeem
}

// RedemptionCost количество баллов, списываемых за один канхе
const RedemptionCost = 10

// User представляет пользователя системы
type User struct {
	ID            int64     `json:"id_usuario"`
	Name          string    `json:"nombre"`
	Email         string    `json:"correo"`
	PasswordHash  string    `json:"-"` // Не отправляем хеш в JSON
	Role          string    `json:"rol"`
	DeliveryNotes string    `json:"instrucciones_entrega"`
	Points        int       `json:"puntos_acumulados"`
	RegisteredAt  time.Time `json:"fecha_registro"`
}

// Flavor представляет позицию каталога
type Flavor struct {
	ID    int64           `json:"id_sabor"`
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
	Stock int             `json:"stock"`
}

// Order представляет заголовок заказа
type Order struct {
	ID           int64       `json:"id_pedido"`
	UserID       int64       `json:"id_usuario"`
	IsRedemption bool        `json:"es_canje"`
	Status       OrderStatus `json:"estado"`
	CreatedAt    time.Time   `json:"fecha_pedido"`
}

// OrderItem представляет позицию запроса на покупку
type OrderItem struct {
	FlavorID int64 `json:"idSabor"`
	Quantity int   `json:"cantidad"`
}

// OrderLine представляет строку заказа со снимком цены на момент покупки
type OrderLine struct {
	ID        int64           `json:"id_detalle"`
	OrderID   int64           `json:"id_pedido"`
	FlavorID  int64           `json:"id_sabor"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// StockMovement представляет запись журнала движений стока.
// Записи никогда не изменяются и не удаляются.
type StockMovement struct {
	ID       int64        `json:"id_movimiento"`
	FlavorID int64        `json:"id_sabor"`
	Quantity int          `json:"cantidad"`
	Type     MovementType `json:"tipo"`
	Date     time.Time    `json:"fecha"`
}

// OrderLineRow представляет плоскую строку выборки заказов с деталями
type OrderLineRow struct {
	OrderID      int64
	Date         time.Time
	Status       OrderStatus
	IsRedemption bool
	UserName     string
	FlavorName   string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// HistoryEntry представляет строку истории покупок пользователя
type HistoryEntry struct {
	OrderID      int64           `json:"id"`
	Date         time.Time       `json:"fecha"`
	IsRedemption bool            `json:"es_canje"`
	Flavor       string          `json:"sabor"`
	Quantity     int             `json:"cantidad"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// GroupedOrderLine представляет строку заказа в сгруппированном ответе
type GroupedOrderLine struct {
	Flavor    string          `json:"sabor"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// GroupedOrder представляет заказ со вложенными строками и итогом
type GroupedOrder struct {
	OrderID      int64              `json:"id_pedido"`
	Date         time.Time          `json:"fecha"`
	Status       OrderStatus        `json:"estado"`
	IsRedemption bool               `json:"es_canje"`
	UserName     string             `json:"usuario,omitempty"`
	Lines        []GroupedOrderLine `json:"detalle"`
	Total        decimal.Decimal    `json:"total_pedido"`
}

// PointsSummary представляет баланс баллов с производными значениями
type PointsSummary struct {
	Name      string `json:"cliente"`
	Total     int    `json:"puntos_totales"`
	Available int    `json:"canjes_disponibles"`
	ToNext    int    `json:"faltan_para_el_proximo"`
}
