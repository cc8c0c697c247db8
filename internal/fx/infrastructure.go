package fx

import (
	"github.com/sabur-pro/rayan-admin/config"
	"github.com/sabur-pro/rayan-admin/internal/kv"
	"github.com/sabur-pro/rayan-admin/internal/logger"

	"go.uber.org/fx"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newStore,
	),
)

func newStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := kv.OpenFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Storage.FilePath).Msg("using file storage")
		return store, nil
	default:
		store, err := kv.NewGormStore(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("backend", string(cfg.Storage.Backend)).Msg("using database storage")
		return store, nil
	}
}
