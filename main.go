// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ziaclinic/config"
	"ziaclinic/database"
	"ziaclinic/database/repository"
	"ziaclinic/handlers"
	"ziaclinic/middleware"
	"ziaclinic/routes"
	"ziaclinic/services/appointment"
	"ziaclinic/services/payment"
	"ziaclinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const fallbackDatabaseURL = "mongodb://localhost:27017"

func main() {
	cfg := config.LoadConfig()
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Record store. An unreachable server leaves the API up in degraded mode.
	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		logger.Warn("No DATABASE_URL or MONGO_URI configured, falling back to local MongoDB",
			zap.String("uri", fallbackDatabaseURL))
		dbURL = fallbackDatabaseURL
	}
	store, err := database.Connect(rootCtx, dbURL, cfg.DatabaseName)
	if err != nil {
		logger.Fatal("main: failed to create MongoDB client", zap.Error(err))
	}
	pingCtx, cancelPing := context.WithTimeout(rootCtx, cfg.DBTimeout())
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn("main: MongoDB unreachable, starting degraded", zap.Error(err))
	} else {
		logger.Info("main: connected to MongoDB", zap.String("database", cfg.DatabaseName))
	}
	cancelPing()

	// repositories.
	apptRepo := repository.NewMongoAppointmentRepo(store.DB, cfg.DBTimeout())
	payRepo := repository.NewMongoPaymentRepo(store.DB, cfg.DBTimeout())
	for name, ensure := range map[string]func(context.Context) error{
		"appointments": apptRepo.EnsureIndexes,
		"payments":     payRepo.EnsureIndexes,
	} {
		if err := ensure(rootCtx); err != nil {
			logger.Warn("main: index setup failed", zap.String("collection", name), zap.Error(err))
		}
	}

	// Optional Redis for slot locking.
	var (
		cacheClient *redis.Client
		cachePinger utils.Pinger
		locker      appointment.SlotLocker = appointment.NoopLocker{}
	)
	if cfg.RedisAddr != "" {
		cacheClient, err = utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
		if err != nil {
			logger.Warn("main: Redis unavailable", zap.Error(err))
		} else {
			cachePinger = utils.RedisPinger{Client: cacheClient}
		}
	}
	if cfg.SlotLocking {
		if cacheClient != nil {
			locker = appointment.NewRedisSlotLocker(cacheClient, cfg.DBTimeout(), logger)
			logger.Info("main: per-date slot locking enabled")
		} else {
			logger.Warn("main: SLOT_LOCKING requested without a reachable REDIS_ADDR, bookings are not serialised")
		}
	}

	// services.
	appointmentService := appointment.NewAppointmentService(apptRepo, cfg.ClinicLocation(), locker, logger)
	paymentService := payment.NewPaymentService(payRepo, apptRepo, logger)

	monitor := utils.NewHealthMonitor(store, cachePinger, logger)
	monitor.Start(rootCtx, cfg.HealthCheckInterval())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(appointmentService, paymentService, monitor, logger)
	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("ZIA Clinic backend listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if cacheClient != nil {
		_ = cacheClient.Close()
	}
	if err := store.Disconnect(ctx); err != nil {
		logger.Error("main: failed to close MongoDB client", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
