package app

import (
	"github.com/avc/marcianos-loyalty/internal/handlers"
	"github.com/avc/marcianos-loyalty/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/login", deps.handlers.auth.Login)
	r.Post("/registro", deps.handlers.auth.Register)

	// Подписка на события о новых заказах
	r.Get("/ws", deps.handlers.ws.Subscribe)

	// Защищенные эндпоинты
	r.Route("/cliente", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Post("/comprar", deps.handlers.client.Purchase)
		r.Post("/canjear", deps.handlers.client.Redeem)
		r.Patch("/estado", deps.handlers.client.ChangeStatus)
		r.Get("/historial/{userId}", deps.handlers.client.History)
		r.Get("/pedidos-agrupados/{userId}", deps.handlers.client.GroupedOrders)
		r.Get("/puntos/{userId}", deps.handlers.client.Points)
	})

	r.Route("/sabor", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Get("/", deps.handlers.catalog.List)
		r.Post("/nuevo", deps.handlers.catalog.Create)
		r.Patch("/stock", deps.handlers.catalog.Restock)
	})

	r.Route("/pedidos", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Get("/", deps.handlers.stock.ListOrders)
		r.Post("/movimiento", deps.handlers.stock.RecordMovement)
	})
}
