package response

import (
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"

	"github.com/jinzhu/copier"
)

type AvailabilityBody struct {
	RoomTypeID     int64     `json:"room_type_id"`
	IsAvailable    bool      `json:"is_available"`
	MinFreeRooms   int       `json:"min_available_rooms"`
	BindingDate    stay.Date `json:"binding_date"`
	RequestedRooms int       `json:"requested_rooms"`
	Nights         int       `json:"num_nights"`
}

type AvailabilityResponse struct {
	Success      bool             `json:"success"`
	Availability AvailabilityBody `json:"availability"`
}

type PriceResponse struct {
	Success bool                    `json:"success"`
	Pricing *pricing.PriceBreakdown `json:"pricing"`
}

func FromAvailability(a *inventory.Availability) (*AvailabilityResponse, error) {
	var body AvailabilityBody
	if err := copier.Copy(&body, a); err != nil {
		return nil, err
	}
	return &AvailabilityResponse{Success: true, Availability: body}, nil
}

func FromBreakdown(b *pricing.PriceBreakdown) *PriceResponse {
	return &PriceResponse{Success: true, Pricing: b}
}
