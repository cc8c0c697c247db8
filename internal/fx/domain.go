package fx

import (
	"context"

	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	"github.com/sabur-pro/rayan-admin/internal/kv"
	"github.com/sabur-pro/rayan-admin/internal/logger"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newLedgerService,
	),
	fx.Invoke(
		loadLedger,
	),
)

func newLedgerService(store kv.Store) *ledger.Service {
	return ledger.NewService(store)
}

func loadLedger(lc fx.Lifecycle, svc *ledger.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			result := svc.Load(ctx)
			if result.TransactionsRecovered || result.AccountsRecovered {
				logger.Warn().
					Bool("transactions_recovered", result.TransactionsRecovered).
					Bool("accounts_recovered", result.AccountsRecovered).
					Msg("ledger state rebuilt from defaults")
			}
			return nil
		},
	})
}
