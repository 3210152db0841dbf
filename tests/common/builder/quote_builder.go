//go:build unit || e2e

package builder

import (
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	reqdto "hotel-quote-engine/internal/handler/dto/request"
	"hotel-quote-engine/internal/pkg/jsonnum"
	"hotel-quote-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteBuilder struct {
	RoomTypeID   int64
	CheckIn      stay.Date
	CheckOut     stay.Date
	Rooms        int
	DiscountCode string
	BasePrice    pricing.Money
	TaxPercent   decimal.Decimal
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		RoomTypeID: 1,
		CheckIn:    stay.NewDate(2024, 12, 1),
		CheckOut:   stay.NewDate(2024, 12, 3),
		Rooms:      1,
		BasePrice:  pricing.MoneyFromInt(3000),
		TaxPercent: decimal.NewFromInt(12),
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

// Build methods
func (q *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	rooms := q.Rooms
	return reqdto.QuoteRequest{
		RoomTypeID:   q.RoomTypeID,
		CheckIn:      q.CheckIn.String(),
		CheckOut:     q.CheckOut.String(),
		NumRooms:     &rooms,
		DiscountCode: q.DiscountCode,
	}
}

func (q *QuoteBuilder) BuildQuery() queries.QuoteRequest {
	return queries.QuoteRequest{
		RoomTypeID:   q.RoomTypeID,
		CheckIn:      q.CheckIn,
		CheckOut:     q.CheckOut,
		Rooms:        q.Rooms,
		DiscountCode: q.DiscountCode,
	}
}

func (q *QuoteBuilder) BuildAvailability(minFree int) *inventory.Availability {
	return &inventory.Availability{
		RoomTypeID:     q.RoomTypeID,
		IsAvailable:    minFree >= q.Rooms,
		MinFreeRooms:   minFree,
		BindingDate:    q.CheckIn,
		RequestedRooms: q.Rooms,
		Nights:         q.CheckIn.DaysUntil(q.CheckOut),
	}
}

// BuildBreakdown prices every night at the base price without a discount.
func (q *QuoteBuilder) BuildBreakdown() *pricing.PriceBreakdown {
	nights := q.CheckIn.DaysUntil(q.CheckOut)
	rates := make([]pricing.NightlyRate, 0, nights)
	for i := range nights {
		rates = append(rates, pricing.NightlyRate{Date: q.CheckIn.AddDays(i), Rate: q.BasePrice})
	}
	subtotal := q.BasePrice.Times(nights * q.Rooms)
	tax := subtotal.Percent(q.TaxPercent).RoundMinorUnit()
	return &pricing.PriceBreakdown{
		RoomTypeID:            q.RoomTypeID,
		BasePrice:             q.BasePrice,
		NightlyRates:          rates,
		Nights:                nights,
		Rooms:                 q.Rooms,
		Subtotal:              subtotal,
		SubtotalAfterDiscount: subtotal,
		TaxPercentage:         jsonnum.New(q.TaxPercent),
		TaxAmount:             tax,
		Total:                 subtotal.Add(tax),
		Currency:              "INR",
		DiscountDetails:       pricing.DiscountDetails{Source: pricing.SourceNone},
	}
}
