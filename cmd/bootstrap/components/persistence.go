package components

import (
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// the unit of work builds its read stores per transaction, so only the
// sqlc queries and the pool are shared
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
