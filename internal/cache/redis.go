package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akozyreva/airlines/config"
	"github.com/akozyreva/airlines/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns the cached unfiltered flight listing, or nil on a miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightInfo
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached listing after a booking changed
// availability.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatLock takes a short-lived lock on a (flight, row, seat)
// triple. It is a fast-path conflict check only; the tickets unique
// index remains the source of truth.
func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightID, row, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error {
	return c.client.Del(ctx, seatLockKey(flightID, row, seat)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightID int64, row, seat int) string {
	return fmt.Sprintf("lock:flight:%d:row:%d:seat:%d", flightID, row, seat)
}
