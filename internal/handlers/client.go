package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ClientHandler обрабатывает маршруты группы /cliente
type ClientHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

// NewClientHandler создает новый ClientHandler
func NewClientHandler(orderService domain.OrderService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type purchaseRequest struct {
	UserID   int64              `json:"userId"`
	Products []domain.OrderItem `json:"productos"`
}

type purchaseResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"pedidoId"`
}

type redeemRequest struct {
	UserID   int64 `json:"userId"`
	FlavorID int64 `json:"idSabor"`
}

type successMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statusRequest struct {
	OrderID   int64              `json:"id_pedido"`
	NewStatus domain.OrderStatus `json:"nuevoEstado"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Points  int    `json:"puntosSumados"`
}

// Purchase оформляет покупку: POST /cliente/comprar
func (h *ClientHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	orderID, err := h.orderService.PlaceOrder(r.Context(), req.UserID, req.Products)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to place order", zap.Error(err), zap.Int64("user_id", req.UserID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, purchaseResponse{Success: true, OrderID: orderID})
}

// Redeem обменивает баллы на сабор: POST /cliente/canjear
func (h *ClientHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	err := h.orderService.Redeem(r.Context(), req.UserID, req.FlavorID)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to redeem", zap.Error(err), zap.Int64("user_id", req.UserID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, successMessage{Success: true, Message: "Canje realizado correctamente"})
}

// ChangeStatus переводит заказ в новый статус: PATCH /cliente/estado
func (h *ClientHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	credited, err := h.orderService.ChangeStatus(r.Context(), req.OrderID, req.NewStatus)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to change order status", zap.Error(err), zap.Int64("order_id", req.OrderID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	message := "Estado actualizado correctamente"
	if credited > 0 {
		message = fmt.Sprintf("Estado actualizado. Se sumaron %d puntos.", credited)
	}

	writeJSON(w, h.logger, http.StatusOK, statusResponse{Success: true, Message: message, Points: credited})
}

// History возвращает плоскую историю: GET /cliente/historial/{userId}
func (h *ClientHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	history, err := h.orderService.GetHistory(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get history", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, history)
}

// GroupedOrders возвращает заказы со вложенными строками:
// GET /cliente/pedidos-agrupados/{userId}
func (h *ClientHandler) GroupedOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	orders, err := h.orderService.GetGroupedOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get grouped orders", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

type pointsResponse struct {
	Success bool                  `json:"success"`
	Data    *domain.PointsSummary `json:"data"`
}

// Points возвращает баланс баллов: GET /cliente/puntos/{userId}
func (h *ClientHandler) Points(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	summary, err := h.orderService.GetPoints(r.Context(), userID)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeJSON(w, h.logger, status, messageResponse{Message: msg})
			return
		}
		h.logger.Error("failed to get points", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, pointsResponse{Success: true, Data: summary})
}

// userIDParam разбирает {userId} из пути
func (h *ClientHandler) userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "userId inválido")
		return 0, false
	}
	return userID, true
}
