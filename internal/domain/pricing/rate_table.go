package pricing

import (
	"hotel-quote-engine/internal/domain/stay"
)

// RateOverride replaces the base price for one night of one room type.
type RateOverride struct {
	Date   stay.Date
	Price  Money
	Reason string
}

// RateTable answers the nightly rate of a single room type.
type RateTable struct {
	roomTypeID int64
	base       Money
	overrides  map[int64]Money
}

func NewRateTable(roomTypeID int64, base Money, overrides []RateOverride) (RateTable, error) {
	if base.IsNegative() {
		return RateTable{}, ErrNegativePrice
	}
	m := make(map[int64]Money, len(overrides))
	for _, o := range overrides {
		if o.Price.IsNegative() {
			return RateTable{}, ErrNegativePrice
		}
		m[o.Date.DayNumber()] = o.Price
	}
	return RateTable{roomTypeID: roomTypeID, base: base, overrides: m}, nil
}

func (t RateTable) RoomTypeID() int64 { return t.roomTypeID }
func (t RateTable) BasePrice() Money  { return t.base }

func (t RateTable) NightlyRate(d stay.Date) Money {
	if p, ok := t.overrides[d.DayNumber()]; ok {
		return p
	}
	return t.base
}
