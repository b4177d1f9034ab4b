package handlers

import (
	"net/http"

	"github.com/avc/marcianos-loyalty/internal/notifier"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler обрабатывает подписку на события о новых заказах
type WSHandler struct {
	hub      *notifier.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWSHandler создает новый WSHandler
func NewWSHandler(hub *notifier.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Подписчики приходят с любого origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe апгрейдит запрос до WebSocket и регистрирует соединение в хабе:
// GET /ws
func (h *WSHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "No es una conexión WebSocket", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)
}
