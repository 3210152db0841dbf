package response

import (
	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/jsonnum"
	"hotel-quote-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type HotelSummaryResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	CityID       int64            `json:"city_id"`
	CityName     string           `json:"city_name"`
	Address      string           `json:"address"`
	StarRating   int              `json:"star_rating"`
	ReviewRating jsonnum.Decimal  `json:"review_rating"`
	ReviewCount  int              `json:"review_count"`
	Amenities    []string         `json:"amenities"`
	MinPrice     pricing.Money    `json:"min_price"`
	ImageURL     string           `json:"image_url"`
	Featured     bool             `json:"is_featured"`
	Latitude     *jsonnum.Decimal `json:"latitude,omitempty"`
	Longitude    *jsonnum.Decimal `json:"longitude,omitempty"`
}

type HotelPageResponse struct {
	Count    int                    `json:"count"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
	HasNext  bool                   `json:"has_next"`
	Results  []HotelSummaryResponse `json:"results"`
}

type RoomTypeResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	BasePrice    pricing.Money `json:"base_price"`
	MaxOccupancy int           `json:"max_occupancy"`
	TotalRooms   int           `json:"total_rooms"`
	Available    bool          `json:"is_available"`
}

type DiscountResponse struct {
	Code             string               `json:"code"`
	Kind             pricing.DiscountKind `json:"discount_type"`
	Value            jsonnum.Decimal      `json:"discount_value"`
	Description      string               `json:"description"`
	MinBookingAmount pricing.Money        `json:"min_booking_amount"`
	MaxDiscount      *pricing.Money       `json:"max_discount,omitempty"`
	ValidFrom        *stay.Date           `json:"valid_from,omitempty"`
	ValidTill        *stay.Date           `json:"valid_till,omitempty"`
}

type HotelDetailResponse struct {
	HotelSummaryResponse
	Description   string             `json:"description"`
	TaxPercentage jsonnum.Decimal    `json:"gst_percentage"`
	CheckInTime   string             `json:"checkin_time"`
	CheckOutTime  string             `json:"checkout_time"`
	RoomTypes     []RoomTypeResponse `json:"room_types"`
	Discounts     []DiscountResponse `json:"discounts"`
}

type RoomTypeOccupancyResponse struct {
	RoomTypeID int64  `json:"room_type_id"`
	Name       string `json:"name"`
	inventory.Occupancy
}

type OccupancyBody struct {
	HotelID   int64                       `json:"hotel_id"`
	HotelName string                      `json:"hotel_name"`
	StartDate stay.Date                   `json:"start_date"`
	EndDate   stay.Date                   `json:"end_date"`
	RoomTypes []RoomTypeOccupancyResponse `json:"room_types"`
	inventory.Occupancy
}

type OccupancyResponse struct {
	Success   bool          `json:"success"`
	Occupancy OccupancyBody `json:"occupancy"`
}

func FromHotelSummary(h catalog.HotelSummary) HotelSummaryResponse {
	return HotelSummaryResponse{
		ID:           h.ID,
		Name:         h.Name,
		CityID:       h.CityID,
		CityName:     h.CityName,
		Address:      h.Address,
		StarRating:   h.StarRating,
		ReviewRating: jsonnum.New(h.ReviewRating),
		ReviewCount:  h.ReviewCount,
		Amenities:    h.Amenities.Names(),
		MinPrice:     h.MinPrice,
		ImageURL:     h.ImageURL,
		Featured:     h.Featured,
		Latitude:     jsonnum.Ptr(h.Latitude),
		Longitude:    jsonnum.Ptr(h.Longitude),
	}
}

func FromHotelPage(p *queries.HotelPage) *HotelPageResponse {
	results := make([]HotelSummaryResponse, 0, len(p.Results))
	for _, h := range p.Results {
		results = append(results, FromHotelSummary(h))
	}
	return &HotelPageResponse{
		Count:    p.Count,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
		Results:  results,
	}
}

func FromHotel(h *hotel.Hotel) (*HotelDetailResponse, error) {
	resp := &HotelDetailResponse{
		HotelSummaryResponse: FromHotelSummary(h.HotelSummary),
		Description:          h.Description,
		CheckInTime:          h.CheckInTime,
		CheckOutTime:         h.CheckOutTime,
		RoomTypes:            []RoomTypeResponse{},
		Discounts:            make([]DiscountResponse, 0, len(h.Discounts)),
	}
	if h.TaxPercentage != nil {
		resp.TaxPercentage = jsonnum.New(*h.TaxPercentage)
	}
	if err := copier.Copy(&resp.RoomTypes, h.RoomTypes); err != nil {
		return nil, err
	}
	for _, d := range h.Discounts {
		resp.Discounts = append(resp.Discounts, DiscountResponse{
			Code:             d.Code,
			Kind:             d.Kind,
			Value:            jsonnum.New(d.Value),
			Description:      d.Description,
			MinBookingAmount: d.MinBookingAmount,
			MaxDiscount:      d.MaxDiscount,
			ValidFrom:        d.ValidFrom,
			ValidTill:        d.ValidTill,
		})
	}
	return resp, nil
}

func FromOccupancy(o *queries.HotelOccupancy) *OccupancyResponse {
	rooms := make([]RoomTypeOccupancyResponse, 0, len(o.RoomTypes))
	for _, rt := range o.RoomTypes {
		rooms = append(rooms, RoomTypeOccupancyResponse{
			RoomTypeID: rt.RoomTypeID,
			Name:       rt.Name,
			Occupancy:  rt.Occupancy,
		})
	}
	return &OccupancyResponse{
		Success: true,
		Occupancy: OccupancyBody{
			HotelID:   o.HotelID,
			HotelName: o.HotelName,
			StartDate: o.Start,
			EndDate:   o.End,
			RoomTypes: rooms,
			Occupancy: o.Occupancy,
		},
	}
}
