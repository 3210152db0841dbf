package bootstrap

import (
	"hotel-quote-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	PricingModule,
	CacheModule,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
