package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"go.uber.org/zap"
)

// errorResponse тело ответа с ошибкой в формате исходного API
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// messageResponse тело ответа с сообщением
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON сериализует тело ответа с заданным статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отдает {success:false, error:...}
func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Success: false, Error: message})
}

// mapBusinessError переводит ошибки бизнес-правил в HTTP статус и
// сообщение для клиента. Возвращает ok=false для нераспознанных ошибок.
func mapBusinessError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrOrderInFlight):
		return http.StatusBadRequest, "Ya tienes un pedido activo", true
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, "Stock insuficiente", true
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusBadRequest, "Puntos insuficientes. Necesitas al menos 10 puntos.", true
	case errors.Is(err, domain.ErrOrderFinalized):
		return http.StatusBadRequest, "Este pedido ya fue completado anteriormente", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado", true
	case errors.Is(err, domain.ErrFlavorNotFound):
		return http.StatusNotFound, "Sabor no encontrado", true
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Pedido no encontrado", true
	}
	return 0, "", false
}
