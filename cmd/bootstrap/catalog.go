package bootstrap

import (
	"context"

	"hotel-quote-engine/internal/infra/catalog"
	"hotel-quote-engine/internal/pkg/config"
	"hotel-quote-engine/internal/usecase/queries"
	"hotel-quote-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewSnapshotStore,
		func(s *catalog.SnapshotStore) queries.CatalogSource { return s },
	),
)

func NewSnapshotStore(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork) *catalog.SnapshotStore {
	store := catalog.NewSnapshotStore(uow, cfg.Catalog.RefreshInterval)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			store.Stop()
			return nil
		},
	})
	return store
}
