package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	batchapp "github.com/muhammadheryan/drims/application/batch"
	dispatchapp "github.com/muhammadheryan/drims/application/dispatch"
	intakeapp "github.com/muhammadheryan/drims/application/intake"
	stockapp "github.com/muhammadheryan/drims/application/stock"
	userapp "github.com/muhammadheryan/drims/application/user"
	warehouseapp "github.com/muhammadheryan/drims/application/warehouse"
	"github.com/muhammadheryan/drims/cmd/config"
	redisclient "github.com/muhammadheryan/drims/cmd/redis"
	_ "github.com/muhammadheryan/drims/docs"
	catalogRepo "github.com/muhammadheryan/drims/repository/catalog"
	donationRepo "github.com/muhammadheryan/drims/repository/donation"
	inventoryRepo "github.com/muhammadheryan/drims/repository/inventory"
	redisRepo "github.com/muhammadheryan/drims/repository/redis"
	reliefRepo "github.com/muhammadheryan/drims/repository/relief"
	txRepo "github.com/muhammadheryan/drims/repository/tx"
	userRepo "github.com/muhammadheryan/drims/repository/user"
	warehouseRepo "github.com/muhammadheryan/drims/repository/warehouse"
	"github.com/muhammadheryan/drims/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/transport"
	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/muhammadheryan/drims/utils/logger"
	"go.uber.org/zap"
)

// @title DRIMS Inventory API
// @version 1.0
// @description Donation intake, batch tracking and relief package dispatch
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Event publisher, a no-op when the broker is disabled
	var publisher rabbitmq.EventPublisher = rabbitmq.Nop{}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db, cfg.Database.LockWaitTimeout)
	RedisRepo := redisRepo.NewRepository(cfg.Redis.Namespace)
	UserRepo := userRepo.NewUserRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db, RedisRepo, cfg.Redis.CatalogTTL)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	DonationRepo := donationRepo.NewDonationRepository(db)
	ReliefRepo := reliefRepo.NewReliefRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)

	// Initialize application layers
	clk := clock.New()
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	BatchApp := batchapp.NewBatchApp(cfg, clk, TxRepo, InventoryRepo, CatalogRepo)
	IntakeApp := intakeapp.NewIntakeApp(clk, TxRepo, DonationRepo, InventoryRepo, CatalogRepo, BatchApp, publisher)
	DispatchApp := dispatchapp.NewDispatchApp(clk, TxRepo, ReliefRepo, InventoryRepo, CatalogRepo, publisher)
	StockApp := stockapp.NewStockApp(InventoryRepo, CatalogRepo)
	WarehouseApp := warehouseapp.NewWarehouseApp(clk, TxRepo, WarehouseRepo, CatalogRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		IntakeApp:    IntakeApp,
		DispatchApp:  DispatchApp,
		BatchApp:     BatchApp,
		StockApp:     StockApp,
		WarehouseApp: WarehouseApp,
	}, transport.Options{InternalAPIKey: cfg.Auth.InternalAPIKey})

	// Stock audit consumer, reconciling every aggregate a committed event touched
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.ConsumerEnabled {
		auditor := rabbitmq.NewInternalAPIAuditor(cfg.Server.InternalURL, cfg.Auth.InternalAPIKey)
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.RabbitMQ.Exchange, cfg.RabbitMQ.AuditQueue, auditor)
		if err != nil {
			logger.Fatal("err create consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start consumer", zap.Error(err))
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("server stopped")
}
