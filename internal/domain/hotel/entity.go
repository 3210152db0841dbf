package hotel

import (
	"errors"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var ErrInvalidRoomType = errors.New("invalid room type")

// RoomType is a bookable room category of a hotel.
type RoomType struct {
	ID           int64
	HotelID      int64
	Name         string
	Description  string
	BasePrice    pricing.Money
	MaxOccupancy int
	TotalRooms   int
	// Available is false when the room type is closed for sale.
	Available bool
}

func (r RoomType) Validate() error {
	if r.BasePrice.IsNegative() || r.TotalRooms < 0 || r.MaxOccupancy < 0 {
		return ErrInvalidRoomType
	}
	return nil
}

// Hotel is the detail view of a catalog hotel.
type Hotel struct {
	catalog.HotelSummary
	Description string
	// TaxPercentage is nil when the hotel uses the configured default.
	TaxPercentage *decimal.Decimal
	CheckInTime   string
	CheckOutTime  string
	RoomTypes     []RoomType
	Discounts     []pricing.PromoCode
}

// MinBasePrice is zero when the hotel has no room types.
func MinBasePrice(rooms []RoomType) pricing.Money {
	if len(rooms) == 0 {
		return pricing.Money{}
	}
	m := rooms[0].BasePrice
	for _, r := range rooms[1:] {
		m = pricing.MinMoney(m, r.BasePrice)
	}
	return m
}
