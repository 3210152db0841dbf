package pricing

import (
	"errors"

	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/jsonnum"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRoomCount     = errors.New("number of rooms must be at least 1")
	ErrInvalidTaxPercentage = errors.New("tax percentage must be between 0 and 100")
	ErrNegativePrice        = errors.New("price cannot be negative")
)

type QuoteInput struct {
	Rates         RateTable
	Stay          stay.DateRange
	Rooms         int
	TaxPercentage decimal.Decimal
	Currency      string
	DiscountCode  string
	Promo         *PromoCode
}

type NightlyRate struct {
	Date stay.Date `json:"date"`
	Rate Money     `json:"rate"`
}

type PriceBreakdown struct {
	RoomTypeID            int64           `json:"room_type_id"`
	BasePrice             Money           `json:"base_price"`
	NightlyRates          []NightlyRate   `json:"nightly_rates"`
	Nights                int             `json:"num_nights"`
	Rooms                 int             `json:"num_rooms"`
	Subtotal              Money           `json:"subtotal"`
	Discount              Money           `json:"discount_amount"`
	SubtotalAfterDiscount Money           `json:"subtotal_after_discount"`
	TaxPercentage         jsonnum.Decimal `json:"gst_percentage"`
	TaxAmount             Money           `json:"gst_amount"`
	Total                 Money           `json:"total_amount"`
	Currency              string          `json:"currency"`
	DiscountDetails       DiscountDetails `json:"discount_details"`
}

type PriceCalculator interface {
	Breakdown(in QuoteInput) (PriceBreakdown, error)
}

type DefaultPriceCalculator struct {
	policy Policy
}

func NewDefaultPriceCalculator(policy Policy) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{policy: policy}
}

func (pc *DefaultPriceCalculator) Breakdown(in QuoteInput) (PriceBreakdown, error) {
	nights := in.Stay.Nights()
	if nights < 1 {
		return PriceBreakdown{}, stay.ErrInvalidDateRange
	}
	if in.Rooms < 1 {
		return PriceBreakdown{}, ErrInvalidRoomCount
	}
	if !isValidPercent(in.TaxPercentage) {
		return PriceBreakdown{}, ErrInvalidTaxPercentage
	}

	rates := make([]NightlyRate, 0, nights)
	perRoom := Money{}
	for d := range in.Stay.Dates() {
		rate := in.Rates.NightlyRate(d)
		rates = append(rates, NightlyRate{Date: d, Rate: rate})
		perRoom = perRoom.Add(rate)
	}
	subtotal := perRoom.Times(in.Rooms)

	discount, details := pc.policy.Resolve(DiscountRequest{
		Nights:   nights,
		Subtotal: subtotal,
		CheckIn:  in.Stay.CheckIn(),
		Code:     in.DiscountCode,
		Promo:    in.Promo,
	})

	taxable := subtotal.Sub(discount)
	// the only rounding step
	tax := taxable.Percent(in.TaxPercentage).RoundMinorUnit()

	return PriceBreakdown{
		RoomTypeID:            in.Rates.RoomTypeID(),
		BasePrice:             in.Rates.BasePrice(),
		NightlyRates:          rates,
		Nights:                nights,
		Rooms:                 in.Rooms,
		Subtotal:              subtotal,
		Discount:              discount,
		SubtotalAfterDiscount: taxable,
		TaxPercentage:         jsonnum.New(in.TaxPercentage),
		TaxAmount:             tax,
		Total:                 taxable.Add(tax),
		Currency:              in.Currency,
		DiscountDetails:       details,
	}, nil
}
