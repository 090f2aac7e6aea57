package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	directoryAdapter "github.com/chargehub/chargehub/internal/adapter/directory"
	"github.com/chargehub/chargehub/internal/adapter/http/fiber/handlers"
	"github.com/chargehub/chargehub/internal/adapter/http/fiber/middleware"
	"github.com/chargehub/chargehub/internal/adapter/queue"
	"github.com/chargehub/chargehub/internal/adapter/storage/statestore"
	wsAdapter "github.com/chargehub/chargehub/internal/adapter/websocket"
	"github.com/chargehub/chargehub/internal/clock"
	"github.com/chargehub/chargehub/internal/observability/telemetry"
	"github.com/chargehub/chargehub/internal/ports"
	"github.com/chargehub/chargehub/internal/service/account"
	"github.com/chargehub/chargehub/internal/service/auth"
	"github.com/chargehub/chargehub/internal/service/directory"
	"github.com/chargehub/chargehub/internal/service/realtime"
	"github.com/chargehub/chargehub/internal/service/session"
	"github.com/chargehub/chargehub/pkg/config"
)

const serviceName = "chargehub"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting ChargeHub",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(cfg.OpenTelemetry.ServiceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// State store: file-backed by default, Redis for shared deployments.
	var store ports.StateStore
	switch cfg.Storage.Driver {
	case "redis":
		store, err = statestore.NewRedisStore(cfg.Storage.RedisURL, logger)
	default:
		store, err = statestore.NewFileStore(cfg.Storage.FilePath, logger)
	}
	if err != nil {
		logger.Fatal("Failed to open state store", zap.Error(err))
	}
	defer store.Close()

	// Event bus: in-process by default, NATS when configured.
	var bus queue.MessageQueue
	if cfg.NATS.Enabled {
		bus, err = queue.NewNATSQueue(cfg.NATS.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
	} else {
		bus = queue.NewMemoryQueue(logger)
	}
	defer bus.Close()

	sessionRepo := statestore.NewSessionRepository(store, logger)
	accountRepo := statestore.NewAccountRepository(store, logger)
	userRepo := statestore.NewUserRepository(store, logger)
	settingsRepo := statestore.NewSettingsRepository(store, logger)

	clk := clock.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	accountService := account.NewService(account.Config{
		LinkDelay: cfg.Account.LinkDelay,
	}, accountRepo, clk, logger)

	directoryClient := directoryAdapter.NewClient(directoryAdapter.ClientConfig{
		FetchDelay:  cfg.Directory.FetchDelay,
		FailureRate: cfg.Directory.FailureRate,
	}, clk, rng, logger)
	directoryService := directory.NewService(directoryClient, accountService, logger)

	authService := auth.NewService(auth.Config{
		Secret:        cfg.JWT.Secret,
		TokenDuration: cfg.JWT.TokenDuration,
	}, userRepo, logger)

	engine := session.NewEngine(session.Config{
		StartDelay:       cfg.Session.StartDelay,
		StopDelay:        cfg.Session.StopDelay,
		ProgressInterval: cfg.Session.ProgressInterval,
		FailureRate:      cfg.Session.FailureRate,
		MinPowerKW:       cfg.Session.MinPowerKW,
		MaxPowerKW:       cfg.Session.MaxPowerKW,
		PricePerKWh:      cfg.Session.PricePerKWh,
		DefaultEnergyCap: cfg.Session.DefaultEnergyCap,
	}, sessionRepo, bus, clk, rng, logger)

	wsHub := wsAdapter.NewHub()
	go wsHub.Run()

	notifier, err := realtime.NewNotifier(realtime.Config{
		HeartbeatInterval: cfg.Realtime.HeartbeatInterval,
		DisconnectChance:  cfg.Realtime.DisconnectChance,
		ReconnectDelay:    cfg.Realtime.ReconnectDelay,
		RefreshInterval:   cfg.Realtime.RefreshInterval,
		PerturbChance:     cfg.Realtime.PerturbChance,
	}, clk, rng, bus, wsHub, logger)
	if err != nil {
		logger.Fatal("Failed to initialize realtime notifier", zap.Error(err))
	}

	runCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	go engine.Run(runCtx)
	go notifier.Run(runCtx)

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))

	healthHandler := handlers.NewHealthHandler(cfg.App.Version)
	app.Get("/health", healthHandler.Health)

	if cfg.Prometheus.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	chargerHandler := handlers.NewChargerHandler(directoryService, notifier, logger)

	// Raw station surface, breaker-guarded like any proxied upstream.
	app.Get("/api/chargers", middleware.CircuitBreaker("charger-query", logger), chargerHandler.Query)

	v1 := app.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/signup", authHandler.SignUp)
	v1.Post("/auth/login", authHandler.Login)

	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	v1.Get("/chargers/nearby", chargerHandler.Nearby)

	accountHandler := handlers.NewAccountHandler(accountService, logger)
	v1.Get("/accounts", accountHandler.List)
	v1.Post("/accounts/:network/connect", accountHandler.Connect)
	v1.Post("/accounts/:network/disconnect", accountHandler.Disconnect)

	sessionHandler := handlers.NewSessionHandler(engine, logger)
	v1.Post("/sessions", sessionHandler.Start)
	v1.Post("/sessions/:id/stop", sessionHandler.Stop)
	v1.Get("/sessions/active", sessionHandler.Active)
	v1.Get("/sessions/history", sessionHandler.History)

	notificationHandler := handlers.NewNotificationHandler(notifier, logger)
	v1.Get("/notifications", notificationHandler.List)
	v1.Post("/notifications/:id/read", notificationHandler.MarkRead)
	v1.Delete("/notifications", notificationHandler.ClearAll)
	v1.Get("/realtime/status", notificationHandler.Status)

	settingsHandler := handlers.NewSettingsHandler(settingsRepo, logger)
	v1.Get("/settings", settingsHandler.Get)
	v1.Put("/settings", settingsHandler.Put)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/updates", websocket.New(func(c *websocket.Conn) {
		wsHub.Serve(c)
	}))

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err == nil {
		zapCfg.Level = level
	}
	return zapCfg.Build()
}
