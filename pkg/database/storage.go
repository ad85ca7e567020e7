package database

import (
	"context"
	"fmt"

	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

// Storage is the durable key/value store behind the client session.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// InitStorage opens the storage driver selected in config
func InitStorage(config *utils.Config, log *zap.Logger) (Storage, error) {
	switch config.Storage.Driver {
	case "", "file":
		return NewFileStorage(config.Storage.Path)
	case "memory":
		return NewMemoryStorage(), nil
	case "redis":
		return InitRedis(config.Redis, config.Storage.Prefix)
	case "postgres":
		return InitPostgres(config.Database)
	default:
		log.Warn("Unknown storage driver", zap.String("driver", config.Storage.Driver))
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}
