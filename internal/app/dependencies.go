package app

import (
	"github.com/avc/marcianos-loyalty/internal/config"
	"github.com/avc/marcianos-loyalty/internal/domain"
	"github.com/avc/marcianos-loyalty/internal/handlers"
	"github.com/avc/marcianos-loyalty/internal/notifier"
	"github.com/avc/marcianos-loyalty/internal/repository/postgres"
	"github.com/avc/marcianos-loyalty/internal/service"
	"github.com/avc/marcianos-loyalty/internal/utils/jwt"
	"github.com/avc/marcianos-loyalty/internal/utils/password"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user   domain.UserRepository
	flavor domain.FlavorRepository
	order  domain.OrderRepository
	stock  domain.StockRepository
}

// services содержит все сервисы приложения
type services struct {
	auth    domain.AuthService
	order   domain.OrderService
	catalog domain.CatalogService
	stock   domain.StockService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth    *handlers.AuthHandler
	client  *handlers.ClientHandler
	catalog *handlers.CatalogHandler
	stock   *handlers.StockHandler
	ws      *handlers.WSHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	hub        *notifier.Hub
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:   postgres.NewUserRepository(dbPool),
		flavor: postgres.NewFlavorRepository(dbPool),
		order:  postgres.NewOrderRepository(dbPool),
		stock:  postgres.NewStockRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Хаб рассылки событий о новых заказах
	hub := notifier.NewHub(cfg.NotifierSendBuffer, logger)

	// Создание сервисов
	authServiceConfig := service.AuthServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
	}
	svcs := &services{
		auth:    service.NewAuthService(repos.user, passwordHasher, jwtManager, authServiceConfig),
		order:   service.NewOrderService(repos.order, repos.user, hub),
		catalog: service.NewCatalogService(repos.flavor, repos.stock),
		stock:   service.NewStockService(repos.stock),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:    handlers.NewAuthHandler(svcs.auth, logger),
		client:  handlers.NewClientHandler(svcs.order, logger),
		catalog: handlers.NewCatalogHandler(svcs.catalog, logger),
		stock:   handlers.NewStockHandler(svcs.stock, svcs.order, logger),
		ws:      handlers.NewWSHandler(hub, logger),
		health:  handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		hub:        hub,
	}
}
