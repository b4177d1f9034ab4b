package notifier

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeTimeout = 5 * time.Second
)

// Event представляет событие, отправляемое подписчикам
type Event struct {
	Event     string       `json:"event"`
	Data      OrderCreated `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
}

// OrderCreated полезная нагрузка события о новом заказе
type OrderCreated struct {
	OrderID int64 `json:"pedido_id"`
	UserID  int64 `json:"user_id"`
}

// client одно живое соединение с собственной ограниченной очередью отправки
type client struct {
	conn   *websocket.Conn
	send   chan []byte
	closed bool
}

// Hub рассылает события о новых заказах всем открытым соединениям.
// Доставка best-effort: без персистентности, без повторов; медленный
// подписчик отключается, когда его очередь переполняется.
type Hub struct {
	sendBuffer int
	logger     *zap.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	wg      sync.WaitGroup
}

// NewHub создает новый Hub
func NewHub(sendBuffer int, logger *zap.Logger) *Hub {
	if sendBuffer < 1 {
		sendBuffer = 16
	}
	return &Hub{
		sendBuffer: sendBuffer,
		logger:     logger,
		clients:    make(map[*client]struct{}),
	}
}

// Register добавляет соединение в набор подписчиков и запускает его пампы
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("websocket client connected", zap.String("remote", conn.RemoteAddr().String()))

	h.wg.Add(2)
	go h.writePump(c)
	go h.readPump(c)
}

// NotifyOrderCreated сериализует событие один раз и кладет его в очередь
// каждого подписчика. Никогда не блокируется: при переполненной очереди
// подписчик отключается.
func (h *Hub) NotifyOrderCreated(orderID, userID int64) {
	event := Event{
		Event:     "order_created",
		Data:      OrderCreated{OrderID: orderID, UserID: userID},
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			// Очередь подписчика заполнена, отключаем его
			h.logger.Warn("subscriber queue full, dropping client",
				zap.String("remote", c.conn.RemoteAddr().String()))
			h.dropLocked(c)
		}
	}
}

// ClientCount возвращает число открытых соединений
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close закрывает все соединения и дожидается завершения пампов
func (h *Hub) Close() {
	h.mu.Lock()
	for c := range h.clients {
		h.dropLocked(c)
	}
	h.mu.Unlock()

	h.wg.Wait()
	h.logger.Info("notification hub stopped")
}

// drop удаляет клиента из набора и закрывает его очередь
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *Hub) dropLocked(c *client) {
	if c.closed {
		return
	}
	c.closed = true
	delete(h.clients, c)
	close(c.send)
}

// writePump пишет события из очереди клиента в его соединение
func (h *Hub) writePump(c *client) {
	defer h.wg.Done()
	defer c.conn.Close()

	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("websocket write failed", zap.Error(err))
			h.drop(c)
			// Дочитываем очередь, чтобы не блокировать отправителей
			for range c.send {
			}
			return
		}
	}
}

// readPump потребляет входящие фреймы до закрытия соединения,
// события от клиентов не принимаются
func (h *Hub) readPump(c *client) {
	defer h.wg.Done()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}

	h.logger.Info("websocket client disconnected", zap.String("remote", c.conn.RemoteAddr().String()))
	h.drop(c)
}
