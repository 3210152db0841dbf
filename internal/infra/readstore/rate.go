package readstore

import (
	"context"

	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"
)

type RateQueries interface {
	ListRateOverrides(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRateOverridesParams) ([]sqlc.RateOverrides, error)
}

type RateReadStore struct {
	queries RateQueries
	db      sqlc.DBTX
}

func NewRateReadStore(queries RateQueries, db sqlc.DBTX) *RateReadStore {
	return &RateReadStore{
		queries: queries,
		db:      db,
	}
}

// ListOverrides returns the overrides falling on nights of the stay.
func (r *RateReadStore) ListOverrides(ctx context.Context, roomTypeID int64, stayRange stay.DateRange) ([]pricing.RateOverride, error) {
	from, to := dateRangeParams(stayRange)
	rows, err := r.queries.ListRateOverrides(ctx, r.db, sqlc.ListRateOverridesParams{
		RoomTypeID: roomTypeID,
		FromDate:   from,
		ToDate:     to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate overrides", err)
	}

	overrides := make([]pricing.RateOverride, 0, len(rows))
	for _, row := range rows {
		d, err := pgconv.DateFromPgtype(row.Date)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rate override date", err, infra.KindInconsistentDB)
		}
		price, err := moneyFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rate override price", err, infra.KindInconsistentDB)
		}
		overrides = append(overrides, pricing.RateOverride{
			Date:   stay.DateOf(d),
			Price:  price,
			Reason: row.Reason,
		})
	}
	return overrides, nil
}
