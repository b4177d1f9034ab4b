package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/marcianos-loyalty/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Name          string `json:"nombre"`
	Email         string `json:"email"`
	Password      string `json:"contrasena"`
	DeliveryNotes string `json:"instrucciones_entrega"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.DeliveryNotes)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			writeJSON(w, h.logger, http.StatusConflict, messageResponse{Message: "El correo ya está registrado"})
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to register", zap.Error(err), zap.String("email", req.Email))
		writeJSON(w, h.logger, http.StatusInternalServerError, messageResponse{Message: "Error interno del servidor"})
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, messageResponse{Message: "Usuario registrado exitosamente"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, h.logger, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to login", zap.Error(err), zap.String("email", req.Email))
		writeError(w, h.logger, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, loginResponse{Token: token})
}
