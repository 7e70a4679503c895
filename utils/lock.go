package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleLocker serializes booking creation per vehicle. The returned release
// function is safe to call exactly once.
type VehicleLocker interface {
	Acquire(ctx context.Context, vehicleID string) (release func(), err error)
}

// RedisVehicleLock implements VehicleLocker with a SET NX advisory lock.
// The booking overlap check and insert are not transactional, so the lock
// closes the check-then-act window between concurrent creates.
type RedisVehicleLock struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisVehicleLock constructs a lock with a sane default TTL.
func NewRedisVehicleLock(client *redis.Client) *RedisVehicleLock {
	return &RedisVehicleLock{Client: client, TTL: 10 * time.Second}
}

func (l *RedisVehicleLock) Acquire(ctx context.Context, vehicleID string) (func(), error) {
	key := "booking:lock:vehicle:" + vehicleID
	token := uuid.New().String()

	deadline := time.Now().Add(l.TTL)
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire vehicle lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for vehicle lock on %s", vehicleID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		// Only delete the lock if we still own it.
		val, err := l.Client.Get(ctx, key).Result()
		if err == nil && val == token {
			if err := l.Client.Del(ctx, key).Err(); err != nil {
				GetLogger().Warn("failed to release vehicle lock",
					zap.String("vehicleId", vehicleID), zap.Error(err))
			}
		}
	}
	return release, nil
}
