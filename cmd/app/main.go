package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akozyreva/airlines/config"
	"github.com/akozyreva/airlines/internal/bootstrap"
	"github.com/akozyreva/airlines/internal/cache"
	"github.com/akozyreva/airlines/internal/kafka"
	"github.com/akozyreva/airlines/internal/repository"
	"github.com/akozyreva/airlines/internal/service/booking"
	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/akozyreva/airlines/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	catalogRepo := repository.NewCatalogRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	catalogService := catalog.NewCatalogService(catalogRepo)
	flightService := flights.NewFlightService(flightRepo, catalogRepo, redisCache)
	orderService := booking.NewOrderService(
		orderRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.OrdersTopic,
		time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second,
		booking.WithPageSizes(cfg.Booking.OrderPageSize, cfg.Booking.OrderPageSizeMax),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, catalogService, flightService, orderService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
