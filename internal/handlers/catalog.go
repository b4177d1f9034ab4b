package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogHandler обрабатывает маршруты группы /sabor
type CatalogHandler struct {
	catalogService domain.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler создает новый CatalogHandler
func NewCatalogHandler(catalogService domain.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List возвращает каталог: GET /sabor
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	flavors, err := h.catalogService.ListFlavors(r.Context())
	if err != nil {
		h.logger.Error("failed to list flavors", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, flavors)
}

type newFlavorRequest struct {
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
	Stock int             `json:"stock"`
}

type newFlavorResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// Create добавляет позицию каталога: POST /sabor/nuevo
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newFlavorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	id, err := h.catalogService.AddFlavor(r.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to add flavor", zap.Error(err), zap.String("name", req.Name))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newFlavorResponse{Success: true, ID: id})
}

type restockRequest struct {
	FlavorID int64 `json:"id_sabor"`
	Quantity int   `json:"cantidad_nueva"`
}

// Restock пополняет сток и фиксирует движение ingreso: PATCH /sabor/stock
func (h *CatalogHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	err := h.catalogService.Restock(r.Context(), req.FlavorID, req.Quantity)
	if err != nil {
		if status, msg, ok := mapBusinessError(err); ok {
			writeError(w, h.logger, status, msg)
			return
		}
		h.logger.Error("failed to restock flavor", zap.Error(err), zap.Int64("flavor_id", req.FlavorID))
		writeError(w, h.logger, http.StatusInternalServerError, "Error al actualizar stock")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, successMessage{Success: true, Message: "Stock actualizado e ingreso registrado"})
}
