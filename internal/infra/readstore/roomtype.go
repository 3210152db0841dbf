package readstore

import (
	"context"

	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"
	"hotel-quote-engine/internal/usecase/shared"
)

type RoomTypeQueries interface {
	GetRoomTypeForQuote(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetRoomTypeForQuoteRow, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeQueries
	db      sqlc.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeQueries, db sqlc.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindForQuote(ctx context.Context, id int64) (*shared.RoomTypeSnapshot, error) {
	row, err := r.queries.GetRoomTypeForQuote(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room type for quote", err)
	}

	base, err := moneyFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room type base price", err, infra.KindInconsistentDB)
	}
	tax, err := pgconv.DecimalPtrFromNumeric(row.GstPercentage)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel gst percentage", err, infra.KindInconsistentDB)
	}

	return &shared.RoomTypeSnapshot{
		ID:            row.ID,
		HotelID:       row.HotelID,
		Name:          row.Name,
		BasePrice:     base,
		TotalRooms:    int(row.TotalRooms),
		Available:     row.IsAvailable,
		TaxPercentage: tax,
	}, nil
}
