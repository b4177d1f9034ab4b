package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"go.uber.org/zap"
)

// StockHandler обрабатывает маршруты группы /pedidos
type StockHandler struct {
	stockService domain.StockService
	orderService domain.OrderService
	logger       *zap.Logger
}

// NewStockHandler создает новый StockHandler
func NewStockHandler(stockService domain.StockService, orderService domain.OrderService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		orderService: orderService,
		logger:       logger,
	}
}

type movementRequest struct {
	FlavorID int64               `json:"idSabor"`
	Quantity int                 `json:"cantidad"`
	Type     domain.MovementType `json:"tipo"`
}

type movementResponse struct {
	Success    bool  `json:"success"`
	MovementID int64 `json:"id_movimiento"`
}

// RecordMovement фиксирует ручное движение стока: POST /pedidos/movimiento
func (h *StockHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	movementID, err := h.stockService.RecordMovement(r.Context(), req.FlavorID, req.Quantity, req.Type)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to record movement", zap.Error(err), zap.Int64("flavor_id", req.FlavorID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, movementResponse{Success: true, MovementID: movementID})
}

// ListOrders возвращает все заказы со вложенными строками: GET /pedidos
func (h *StockHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}
