//go:build unit || e2e

package builder

import (
	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type HotelBuilder struct {
	ID           int64
	Name         string
	CityID       int64
	CityName     string
	StarRating   int
	ReviewRating decimal.Decimal
	Amenities    catalog.AmenitySet
	Featured     bool
	RoomTypes    []hotel.RoomType
	Discounts    []pricing.PromoCode
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:           1,
		Name:         "Coral Residency",
		CityID:       1,
		CityName:     "Goa",
		StarRating:   4,
		ReviewRating: decimal.RequireFromString("4.1"),
		Amenities:    catalog.NewAmenitySet(catalog.AmenityWifi, catalog.AmenityPool),
		RoomTypes: []hotel.RoomType{
			{ID: 10, HotelID: 1, Name: "Deluxe", BasePrice: pricing.MoneyFromInt(3000), MaxOccupancy: 2, TotalRooms: 10, Available: true},
			{ID: 11, HotelID: 1, Name: "Suite", BasePrice: pricing.MoneyFromInt(6000), MaxOccupancy: 4, TotalRooms: 2, Available: true},
		},
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

// Build methods
func (h *HotelBuilder) BuildSummary() catalog.HotelSummary {
	return catalog.HotelSummary{
		ID:           h.ID,
		Name:         h.Name,
		CityID:       h.CityID,
		CityName:     h.CityName,
		StarRating:   h.StarRating,
		ReviewRating: h.ReviewRating,
		Amenities:    h.Amenities,
		MinPrice:     hotel.MinBasePrice(h.RoomTypes),
		Featured:     h.Featured,
	}
}

func (h *HotelBuilder) BuildDomain() *hotel.Hotel {
	tax := decimal.NewFromInt(12)
	return &hotel.Hotel{
		HotelSummary:  h.BuildSummary(),
		TaxPercentage: &tax,
		CheckInTime:   "14:00",
		CheckOutTime:  "11:00",
		RoomTypes:     h.RoomTypes,
		Discounts:     h.Discounts,
	}
}
