package localstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront/core/internal/infrastructure/config"
)

// Open creates the Store selected by the storage configuration.
// The file backend is the default; redis serves deployments where the
// profile is shared across terminals.
func Open(cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case "file":
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		logger.Info("using file-backed local store", zap.String("dir", cfg.Dir))
		return store, nil

	case "redis":
		store, err := NewRedisStore(RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		logger.Info("using redis-backed local store",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
