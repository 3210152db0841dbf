package readstore

import (
	"context"

	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
)

type InventoryQueries interface {
	ListRoomInventory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomInventoryParams) ([]sqlc.RoomInventory, error)
	ListInventoryByHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryByHotelParams) ([]sqlc.RoomInventory, error)
}

type InventoryReadStore struct {
	queries InventoryQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) ListByRoomType(ctx context.Context, roomTypeID int64, stayRange stay.DateRange) ([]inventory.Record, error) {
	from, to := dateRangeParams(stayRange)
	rows, err := r.queries.ListRoomInventory(ctx, r.db, sqlc.ListRoomInventoryParams{
		RoomTypeID: roomTypeID,
		FromDate:   from,
		ToDate:     to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room inventory", err)
	}
	return mapInventoryRows(rows)
}

// ListByHotel groups the records by room type id.
func (r *InventoryReadStore) ListByHotel(ctx context.Context, hotelID int64, stayRange stay.DateRange) (map[int64][]inventory.Record, error) {
	from, to := dateRangeParams(stayRange)
	rows, err := r.queries.ListInventoryByHotel(ctx, r.db, sqlc.ListInventoryByHotelParams{
		HotelID:  hotelID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel inventory", err)
	}

	out := make(map[int64][]inventory.Record)
	for _, row := range rows {
		rec, err := toInventoryRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid inventory date", err, infra.KindInconsistentDB)
		}
		out[row.RoomTypeID] = append(out[row.RoomTypeID], rec)
	}
	return out, nil
}

func mapInventoryRows(rows []sqlc.RoomInventory) ([]inventory.Record, error) {
	records := make([]inventory.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toInventoryRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid inventory date", err, infra.KindInconsistentDB)
		}
		records = append(records, rec)
	}
	return records, nil
}
