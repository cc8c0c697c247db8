package fx

import (
	"github.com/sabur-pro/rayan-admin/config"
	"github.com/sabur-pro/rayan-admin/internal/cms"

	"go.uber.org/fx"
)

var PlatformModule = fx.Module("platform",
	fx.Provide(
		newPlatformClient,
	),
)

func newPlatformClient(cfg *config.Config) *cms.Client {
	return cms.NewClient(cfg)
}
