package readstore

import (
	"context"

	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"
)

type DiscountQueries interface {
	GetHotelDiscountByCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHotelDiscountByCodeParams) (sqlc.HotelDiscounts, error)
	ListActiveDiscountsByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) ([]sqlc.HotelDiscounts, error)
}

type DiscountReadStore struct {
	queries DiscountQueries
	db      sqlc.DBTX
}

func NewDiscountReadStore(queries DiscountQueries, db sqlc.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode matches the code case-insensitively and returns nil when the hotel
// has no such code.
func (r *DiscountReadStore) FindByCode(ctx context.Context, hotelID int64, code string) (*pricing.PromoCode, error) {
	row, err := r.queries.GetHotelDiscountByCode(ctx, r.db, sqlc.GetHotelDiscountByCodeParams{
		HotelID: hotelID,
		Code:    code,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get discount by code", err)
	}

	promo, err := toPromoCode(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount row", err, infra.KindInconsistentDB)
	}
	return promo, nil
}

func (r *DiscountReadStore) ListActiveByHotel(ctx context.Context, hotelID int64) ([]pricing.PromoCode, error) {
	rows, err := r.queries.ListActiveDiscountsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel discounts", err)
	}

	out := make([]pricing.PromoCode, 0, len(rows))
	for _, row := range rows {
		promo, err := toPromoCode(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid discount row", err, infra.KindInconsistentDB)
		}
		out = append(out, *promo)
	}
	return out, nil
}
