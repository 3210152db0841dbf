package shared

import (
	"hotel-quote-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// RoomTypeSnapshot carries what a quote needs from a room type and its hotel.
type RoomTypeSnapshot struct {
	ID         int64
	HotelID    int64
	Name       string
	BasePrice  pricing.Money
	TotalRooms int
	Available  bool
	// TaxPercentage is nil when the hotel has no rate of its own.
	TaxPercentage *decimal.Decimal
}
