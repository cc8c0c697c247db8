package fx

import (
	"time"

	"github.com/sabur-pro/rayan-admin/internal/cms"
	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	"github.com/sabur-pro/rayan-admin/internal/middleware"
	"github.com/sabur-pro/rayan-admin/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(ledgerSvc *ledger.Service, platform *cms.Client) *routes.Handler {
	return &routes.Handler{
		LedgerService: ledgerSvc,
		Platform:      platform,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
