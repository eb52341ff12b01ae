package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pay-amigo/pay_amigo/internal/config"
	"github.com/pay-amigo/pay_amigo/internal/middleware"
	"github.com/pay-amigo/pay_amigo/internal/notification"
	"github.com/pay-amigo/pay_amigo/internal/user"
	"github.com/pay-amigo/pay_amigo/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories fall back to memory stores in dev without a database.
	var userRepo user.Repository
	var walletRepo wallet.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
		walletRepo = wallet.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
	}

	userSvc := user.NewService(userRepo)
	notifier := notification.NewLoggerNotifier(d.Logger)
	walletSvc := wallet.NewService(walletRepo, userSvc, notifier)

	userHandler := user.NewHandler(userSvc)
	walletHandler := wallet.NewHandler(walletSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterUserRoutes(api, userHandler, walletHandler)
	RegisterWalletRoutes(api, walletHandler)

	return nil
}
