package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sauna/cmd"
	kafkaadapter "sauna/internal/adapters/out/kafka"
	"sauna/internal/adapters/out/postgres/bookingrepo"
	redisadapter "sauna/internal/adapters/out/redis"
	"sauna/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	rdb := redisadapter.NewClient(configs.RedisAddr)
	defer func() { _ = rdb.Close() }()

	writer := kafkaadapter.NewWriter(configs.KafkaBrokers, configs.KafkaBookingSentTopic)
	publisher, err := kafkaadapter.NewBookingPublisher(writer, cmd.ServiceName, logger)
	if err != nil {
		log.Fatalf("Error creating booking publisher: %v", err)
	}
	defer func() { _ = publisher.Close() }()

	app, err := cmd.NewCompositionRoot(configs, gormDB, rdb, publisher, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:               envOrDefault("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:            strings.Split(envOrDefault("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaBookingSentTopic:   envOrDefault("KAFKA_BOOKING_SENT_TOPIC", "sauna.booking.sent"),
		Locale:                  envOrDefault("LOCALE", "en-US"),
		Currency:                envOrDefault("CURRENCY", "USD"),
		CurrencySymbol:          envOrDefault("CURRENCY_SYMBOL", "$"),
		SessionIdleTTL:          durationOrDefault("SESSION_IDLE_TTL", 30*time.Minute),
		SessionEvictionSchedule: envOrDefault("SESSION_EVICTION_SCHEDULE", jobs.DefaultEvictionSchedule),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return d
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&bookingrepo.BookingDTO{}); err != nil {
		return nil, fmt.Errorf("migrate bookings: %w", err)
	}
	return db, nil
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Request contexts end with the process so open event streams let shutdown finish.
	e.Server.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
