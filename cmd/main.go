package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CarWash/internal/api"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/config"
	"github.com/m04kA/SMC-CarWash/internal/infra/database"
	"github.com/m04kA/SMC-CarWash/internal/infra/session"
	bookingRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/booking"
	feedbackRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/feedback"
	shopRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/shop"
	userRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/user"
	adminService "github.com/m04kA/SMC-CarWash/internal/service/admin"
	authService "github.com/m04kA/SMC-CarWash/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CarWash/internal/service/bookings"
	feedbackService "github.com/m04kA/SMC-CarWash/internal/service/feedback"
	shopsService "github.com/m04kA/SMC-CarWash/internal/service/shops"
	"github.com/m04kA/SMC-CarWash/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
	"github.com/m04kA/SMC-CarWash/pkg/password"
)

const sessionCleanupInterval = 10 * time.Minute

// EventRecorder счетчик бизнес-событий для сервисов
type EventRecorder interface {
	Inc(event string)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarWash...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		events           EventRecorder = metrics.Nop{}
	)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		events = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных и применяем схему
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Open(startupCtx, cfg.Database)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	if cfg.Database.IsHosted() {
		log.Info("Connected to %s database", db.Backend.Name())
	} else {
		log.Info("Connected to %s database at %s", db.Backend.Name(), cfg.Database.Path)
	}

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db.DB, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")
	}

	users := userRepo.NewRepository(executor, db.Backend)
	bookings := bookingRepo.NewRepository(executor, db.Backend)
	feedback := feedbackRepo.NewRepository(executor, db.Backend)
	shops := shopRepo.NewRepository(executor, db.Backend)

	// Хранилище сессий: Redis, если задан адрес, иначе память процесса
	var sessions session.Store
	if cfg.Redis.Enabled() {
		redisStore := session.NewRedisStore(session.NewRedisClient(cfg.Redis), cfg.Redis.KeyPrefix)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisStore.Ping(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}

		sessions = redisStore
		log.Info("Session store: redis (%s)", cfg.Redis.Addr)
	} else {
		memoryStore := session.NewMemoryStore()
		go memoryStore.RunCleanup(sessionCleanupInterval, stopCh)

		sessions = memoryStore
		log.Info("Session store: in-memory")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		users,
		sessions,
		password.NewBcrypt(cfg.Security.BcryptCost),
		events,
		cfg.Session.TTL(),
		log,
	)
	bookingSvc := bookingsService.NewService(bookings, events, log)
	feedbackSvc := feedbackService.NewService(feedback, events, log)
	shopSvc := shopsService.NewService(shops, events, log)
	adminSvc := adminService.NewService(users, bookings, feedback, shops, cfg.Admin.Emails, log)

	if len(cfg.Admin.Emails) == 0 {
		log.Warn("No admin emails configured, /admin/db is unavailable")
	}

	// Настраиваем роутер
	deps := api.Deps{
		Auth:     authSvc,
		Bookings: bookingSvc,
		Feedback: feedbackSvc,
		Shops:    shopSvc,
		Admin:    adminSvc,
		DB:       db,
		Backend:  db.Backend.Name(),
		Cookies: middleware.Cookies{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL(),
			Secure: cfg.Session.Secure,
		},
		Logger: log,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r := api.NewRouter(deps)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (статистика пула, очистка сессий)
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
