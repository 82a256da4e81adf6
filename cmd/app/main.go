package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeshop/cmd"
	_ "coffeeshop/docs"
	httpadapter "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Coffeeshop Order Service
//	@version		1.0
//	@description	REST API for placing and tracking coffee orders.
//
//	@BasePath		/
func main() {
	configs := getConfigs()

	sqlDB := mustOpenDatabase(configs)
	gormDB := mustWrapGorm(sqlDB)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	root := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateGetAbandonedOrdersQueryHandler(),
		root.CreateGetBaristaBoardQueryHandler(),
		configs.AbandonedAfter,
		root.Clock(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, sqlDB, redisClient, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Values already present in the environment win over .env entries
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         envOrDefault("DB_HOST", "localhost"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         envOrDefault("DB_USER", "postgres"),
		DBPassword:     envOrDefault("DB_PASSWORD", "postgres"),
		DBName:         envOrDefault("DB_NAME", "coffeeshop"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:      envOrDefault("REDIS_ADDR", "localhost:6379"),
		OrderCacheTTL:  envOrDefaultDuration("ORDER_CACHE_TTL", 5*time.Minute),
		AbandonedAfter: envOrDefaultDuration("ABANDONED_AFTER", 30*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

// mustOpenDatabase opens the pq connection the ORM and the health probe share.
func mustOpenDatabase(configs cmd.Config) *sql.DB {
	sqlDB, err := sql.Open("postgres", configs.PostgresDSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}
	return sqlDB
}

func mustWrapGorm(sqlDB *sql.DB) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize ORM: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return gormDB
}

func startWebServer(root cmd.CompositionRoot, sqlDB *sql.DB, redisClient *redis.Client, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreatePayOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreatePrepareOrderCommandHandler(),
		root.CreateMarkOrderReadyCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.OrderCache(),
		httpadapter.PingerFunc(sqlDB.PingContext),
		httpadapter.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}),
	)
	servers.RegisterHandlers(e, server)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	// Block until a shutdown signal arrives, then drain in-flight requests
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
