package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// liveStatuses статусы, при которых заказ считается активным
var liveStatuses = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusUnpaid,
	domain.OrderStatusRedeem,
}

// checkNoLiveOrder проверяет внутри транзакции, что у пользователя нет активного заказа
func checkNoLiveOrder(ctx context.Context, tx pgx.Tx, userID int64) error {
	var liveID int64
	err := tx.QueryRow(ctx,
		`SELECT id_pedido
		 FROM pedidos
		 WHERE id_usuario = $1 AND estado IN ($2, $3, $4)
		 LIMIT 1`,
		userID, liveStatuses[0], liveStatuses[1], liveStatuses[2],
	).Scan(&liveID)

	if err == nil {
		return domain.ErrOrderInFlight
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("repository: failed to check live orders for user %d: %w", userID, err)
	}

	return nil
}

// CreateOrder оформляет покупку одной атомарной транзакцией:
// заголовок заказа, строки со снимком цены и списание стока.
// Любая неудача откатывает транзакцию целиком.
func (r *OrderRepository) CreateOrder(ctx context.Context, userID int64, items []domain.OrderItem) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Блокировка по user_id против параллельного оформления
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	if err := checkNoLiveOrder(ctx, tx, userID); err != nil {
		return 0, err
	}

	var orderID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO pedidos (id_usuario, es_canje, estado)
		 VALUES ($1, FALSE, $2)
		 RETURNING id_pedido`,
		userID, domain.OrderStatusPending,
	).Scan(&orderID)

	if err != nil {
		// Нарушение внешнего ключа: такого пользователя нет (код ошибки PostgreSQL)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("repository: failed to create order for user %d: %w", userID, err)
	}

	for _, item := range items {
		var price decimal.Decimal
		var stock int

		// Перечитываем сабор под блокировкой, сток проверяется и
		// списывается в той же транзакции
		err = tx.QueryRow(ctx,
			`SELECT precio, stock
			 FROM sabores
			 WHERE id_sabor = $1
			 FOR UPDATE`,
			item.FlavorID,
		).Scan(&price, &stock)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, domain.ErrFlavorNotFound
			}
			return 0, fmt.Errorf("repository: failed to lock flavor %d: %w", item.FlavorID, err)
		}

		if stock < item.Quantity {
			return 0, domain.ErrInsufficientStock
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO detalle_pedidos (id_pedido, id_sabor, cantidad, precio_unitario)
			 VALUES ($1, $2, $3, $4)`,
			orderID, item.FlavorID, item.Quantity, price,
		)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to insert order line for flavor %d: %w", item.FlavorID, err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE sabores
			 SET stock = stock - $1
			 WHERE id_sabor = $2`,
			item.Quantity, item.FlavorID,
		)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to decrement stock for flavor %d: %w", item.FlavorID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit order for user %d: %w", userID, err)
	}

	return orderID, nil
}

// RedeemOrder оформляет канж одной транзакцией: заказ в статусе canje,
// строка по нулевой цене, списание баллов и одной единицы стока.
func (r *OrderRepository) RedeemOrder(ctx context.Context, userID, flavorID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	if err := checkNoLiveOrder(ctx, tx, userID); err != nil {
		return 0, err
	}

	var points int
	err = tx.QueryRow(ctx,
		`SELECT puntos_acumulados
		 FROM usuarios
		 WHERE id_usuario = $1
		 FOR UPDATE`,
		userID,
	).Scan(&points)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("repository: failed to lock user %d: %w", userID, err)
	}

	if points < domain.RedemptionCost {
		return 0, domain.ErrInsufficientPoints
	}

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

	if stock < 1 {
		return 0, domain.ErrInsufficientStock
	}

	var orderID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO pedidos (id_usuario, es_canje, estado)
		 VALUES ($1, TRUE, $2)
		 RETURNING id_pedido`,
		userID, domain.OrderStatusRedeem,
	).Scan(&orderID)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to create redemption order for user %d: %w", userID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO detalle_pedidos (id_pedido, id_sabor, cantidad, precio_unitario)
		 VALUES ($1, $2, 1, 0.00)`,
		orderID, flavorID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert redemption line for flavor %d: %w", flavorID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE usuarios
		 SET puntos_acumulados = puntos_acumulados - $1
		 WHERE id_usuario = $2`,
		domain.RedemptionCost, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to deduct points for user %d: %w", userID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE sabores
		 SET stock = stock - 1
		 WHERE id_sabor = $1`,
		flavorID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to decrement stock for flavor %d: %w", flavorID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit redemption for user %d: %w", userID, err)
	}

	return orderID, nil
}

// UpdateOrderStatus переводит заказ в новый статус. При отмене восстанавливает
// сток по строкам заказа, при завершении обычного заказа начисляет баллы
// (по единице за каждую купленную единицу). Возвращает начисленные баллы.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction for order %d: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var userID int64
	var isRedemption bool
	var current domain.OrderStatus

	err = tx.QueryRow(ctx,
		`SELECT id_usuario, es_canje, estado
		 FROM pedidos
		 WHERE id_pedido = $1
		 FOR UPDATE`,
		orderID,
	).Scan(&userID, &isRedemption, &current)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrOrderNotFound
		}
		return 0, fmt.Errorf("repository: failed to lock order %d: %w", orderID, err)
	}

	// Из конечного статуса переходов нет
	if current.Terminal() {
		return 0, domain.ErrOrderFinalized
	}

	// Отмена компенсирует списание стока по каждой строке
	if status == domain.OrderStatusCancelled {
		_, err = tx.Exec(ctx,
			`UPDATE sabores s
			 SET stock = s.stock + d.cantidad
			 FROM detalle_pedidos d
			 WHERE d.id_pedido = $1 AND d.id_sabor = s.id_sabor`,
			orderID,
		)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to restore stock for order %d: %w", orderID, err)
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE pedidos
		 SET estado = $1
		 WHERE id_pedido = $2`,
		status, orderID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to update order %d status: %w", orderID, err)
	}

	// Баллы начисляются ровно один раз: только при переходе в completado
	// и только для обычных заказов
	credited := 0
	if status == domain.OrderStatusCompleted && !isRedemption {
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(cantidad), 0)
			 FROM detalle_pedidos
			 WHERE id_pedido = $1`,
			orderID,
		).Scan(&credited)

		if err != nil {
			return 0, fmt.Errorf("repository: failed to sum order %d lines: %w", orderID, err)
		}

		if credited > 0 {
			_, err = tx.Exec(ctx,
				`UPDATE usuarios
				 SET puntos_acumulados = puntos_acumulados + $1
				 WHERE id_usuario = $2`,
				credited, userID,
			)
			if err != nil {
				return 0, fmt.Errorf("repository: failed to credit points to user %d: %w", userID, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit status change for order %d: %w", orderID, err)
	}

	return credited, nil
}

const orderLinesQuery = `
	SELECT p.id_pedido, p.fecha_pedido, p.estado, p.es_canje, s.nombre, d.cantidad, d.precio_unitario
	FROM pedidos p
	JOIN detalle_pedidos d ON d.id_pedido = p.id_pedido
	JOIN sabores s ON s.id_sabor = d.id_sabor`

// GetOrderLinesByUserID возвращает плоские строки заказов пользователя,
// новые заказы первыми
func (r *OrderRepository) GetOrderLinesByUserID(ctx context.Context, userID int64) ([]*domain.OrderLineRow, error) {
	rows, err := r.db.Query(ctx,
		orderLinesQuery+`
		WHERE p.id_usuario = $1
		ORDER BY p.fecha_pedido DESC, p.id_pedido DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get order lines for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanOrderLineRows(rows, false)
}

// GetAllOrderLines возвращает плоские строки всех заказов с именем клиента
func (r *OrderRepository) GetAllOrderLines(ctx context.Context) ([]*domain.OrderLineRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id_pedido, p.fecha_pedido, p.estado, p.es_canje, s.nombre, d.cantidad, d.precio_unitario, u.nombre
		 FROM pedidos p
		 JOIN detalle_pedidos d ON d.id_pedido = p.id_pedido
		 JOIN sabores s ON s.id_sabor = d.id_sabor
		 JOIN usuarios u ON u.id_usuario = p.id_usuario
		 ORDER BY p.fecha_pedido DESC, p.id_pedido DESC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get order lines: %w", err)
	}
	defer rows.Close()

	return scanOrderLineRows(rows, true)
}

func scanOrderLineRows(rows pgx.Rows, withUser bool) ([]*domain.OrderLineRow, error) {
	var result []*domain.OrderLineRow
	for rows.Next() {
		row := &domain.OrderLineRow{}

		dest := []any{&row.OrderID, &row.Date, &row.Status, &row.IsRedemption, &row.FlavorName, &row.Quantity, &row.UnitPrice}
		if withUser {
			dest = append(dest, &row.UserName)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order line: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order lines: %w", err)
	}

	return result, nil
}
