package request

import (
	"strings"

	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/queries"
)

const DefaultRooms = 1

// QuoteRequest is the body of check-availability and calculate-price.
// Room count is range-checked by the quote queries so that it maps to its own
// error code.
type QuoteRequest struct {
	RoomTypeID   int64  `json:"room_type_id" binding:"required,gt=0"`
	CheckIn      string `json:"check_in" binding:"required,isodate"`
	CheckOut     string `json:"check_out" binding:"required,isodate"`
	NumRooms     *int   `json:"num_rooms,omitempty"`
	DiscountCode string `json:"discount_code,omitempty" binding:"max=50"`
}

func (r QuoteRequest) Rooms() int {
	if r.NumRooms == nil {
		return DefaultRooms
	}
	return *r.NumRooms
}

func (r QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	checkIn, err := stay.ParseDate(r.CheckIn)
	if err != nil {
		return queries.QuoteRequest{}, errs.Wrap(err, "check_in")
	}
	checkOut, err := stay.ParseDate(r.CheckOut)
	if err != nil {
		return queries.QuoteRequest{}, errs.Wrap(err, "check_out")
	}
	return queries.QuoteRequest{
		RoomTypeID:   r.RoomTypeID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Rooms:        r.Rooms(),
		DiscountCode: strings.TrimSpace(r.DiscountCode),
	}, nil
}
