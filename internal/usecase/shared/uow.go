package shared

import (
	"context"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
)

type UnitOfWork interface {
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

// Reads is the read side available inside a unit of work. Lookups of a single
// row return an infra NOT_FOUND error when it does not exist, except
// PromoByCode which returns nil.
type Reads interface {
	RoomTypeForQuote(ctx context.Context, id int64) (*RoomTypeSnapshot, error)
	RateOverrides(ctx context.Context, roomTypeID int64, r stay.DateRange) ([]pricing.RateOverride, error)
	InventoryRecords(ctx context.Context, roomTypeID int64, r stay.DateRange) ([]inventory.Record, error)
	PromoByCode(ctx context.Context, hotelID int64, code string) (*pricing.PromoCode, error)

	HotelByID(ctx context.Context, id int64) (*hotel.Hotel, error)
	HotelInventory(ctx context.Context, hotelID int64, r stay.DateRange) (map[int64][]inventory.Record, error)
	HotelSummaries(ctx context.Context) ([]catalog.HotelSummary, error)
}
