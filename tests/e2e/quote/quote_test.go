//go:build e2e

package quote_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/tests/common/builder"
	"hotel-quote-engine/tests/common/dbtest"
	"hotel-quote-engine/tests/common/httptest"
	"hotel-quote-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/hotels/api/check-availability/"
	priceURL        = "/hotels/api/calculate-price/"
)

type nightlyRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type pricingBody struct {
	RoomTypeID            int64         `json:"room_type_id"`
	NightlyRates          []nightlyRate `json:"nightly_rates"`
	Nights                int           `json:"num_nights"`
	Rooms                 int           `json:"num_rooms"`
	Subtotal              float64       `json:"subtotal"`
	Discount              float64       `json:"discount_amount"`
	SubtotalAfterDiscount float64       `json:"subtotal_after_discount"`
	TaxPercentage         float64       `json:"gst_percentage"`
	TaxAmount             float64       `json:"gst_amount"`
	Total                 float64       `json:"total_amount"`
	Currency              string        `json:"currency"`
	DiscountDetails       struct {
		Source string `json:"source"`
		Code   string `json:"code"`
		Error  string `json:"error"`
	} `json:"discount_details"`
}

type priceResponse struct {
	Success bool        `json:"success"`
	Pricing pricingBody `json:"pricing"`
}

type availabilityResponse struct {
	Success      bool `json:"success"`
	Availability struct {
		IsAvailable  bool   `json:"is_available"`
		MinFreeRooms int    `json:"min_available_rooms"`
		BindingDate  string `json:"binding_date"`
		Nights       int    `json:"num_nights"`
	} `json:"availability"`
}

type QuoteSuite struct {
	e2e.SharedSuite
}

func (s *QuoteSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

// seedRoomType creates a 5 room type priced 2000 with an 18% hotel tax.
func (s *QuoteSuite) seedRoomType(t *testing.T) (hotelID, roomTypeID int64) {
	t.Helper()
	tax := "18.00"
	cityID := dbtest.CreateTestCity(t, s.DB, "Goa")
	hotelID = dbtest.CreateTestHotel(t, s.DB, cityID, dbtest.HotelFixture{
		Name: "Coral Residency", StarRating: 4, ReviewRating: "4.1", TaxPercentage: &tax,
	})
	roomTypeID = dbtest.CreateTestRoomType(t, s.DB, hotelID, dbtest.RoomTypeFixture{
		Name: "Deluxe", BasePrice: "2000.00", TotalRooms: 5, Available: true,
	})
	return hotelID, roomTypeID
}

func stayRequest(roomTypeID int64, rooms int, code string) any {
	return builder.NewQuoteBuilder().With(func(q *builder.QuoteBuilder) {
		q.RoomTypeID = roomTypeID
		q.CheckIn = stay.NewDate(2025, 1, 10)
		q.CheckOut = stay.NewDate(2025, 1, 12)
		q.Rooms = rooms
		q.DiscountCode = code
	}).BuildRequestDTO()
}

// =============================================================================
// TestCheckAvailability
// =============================================================================

func (s *QuoteSuite) TestCheckAvailability() {
	s.Run("Normal case: least free night binds the stay", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		dbtest.CreateTestInventory(t, s.DB, roomTypeID, "2025-01-10", 5, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, stayRequest(roomTypeID, 1, ""))

		var body availabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.True(t, body.Success)
		require.True(t, body.Availability.IsAvailable)
		require.Equal(t, 1, body.Availability.MinFreeRooms)
		require.Equal(t, "2025-01-10", body.Availability.BindingDate)
		require.Equal(t, 2, body.Availability.Nights)
	})

	s.Run("Normal case: not enough rooms is not an error", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		dbtest.CreateTestInventory(t, s.DB, roomTypeID, "2025-01-11", 5, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, stayRequest(roomTypeID, 2, ""))

		var body availabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.False(t, body.Availability.IsAvailable)
		require.Equal(t, "2025-01-11", body.Availability.BindingDate)
	})

	s.Run("Error case: unknown room type", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, stayRequest(424242, 1, ""))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "UNKNOWN_ROOM_TYPE")
	})

	s.Run("Error case: check-out before check-in", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		body := map[string]any{"room_type_id": roomTypeID, "check_in": "2025-01-12", "check_out": "2025-01-10"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})
}

// =============================================================================
// TestCalculatePrice
// =============================================================================

func (s *QuoteSuite) TestCalculatePrice() {
	s.Run("Normal case: override night and hotel tax", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		dbtest.CreateTestRateOverride(t, s.DB, roomTypeID, "2025-01-11", "3000.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, stayRequest(roomTypeID, 1, ""))

		var body priceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.True(t, body.Success)

		wantRates := []nightlyRate{{Date: "2025-01-10", Rate: 2000}, {Date: "2025-01-11", Rate: 3000}}
		if diff := cmp.Diff(wantRates, body.Pricing.NightlyRates); diff != "" {
			t.Errorf("nightly rates mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, float64(5000), body.Pricing.Subtotal)
		require.Equal(t, float64(18), body.Pricing.TaxPercentage)
		require.Equal(t, float64(900), body.Pricing.TaxAmount)
		require.Equal(t, float64(5900), body.Pricing.Total)
		require.Equal(t, "INR", body.Pricing.Currency)
		require.Equal(t, "none", body.Pricing.DiscountDetails.Source)
	})

	s.Run("Normal case: hotel discount code", func() {
		t := s.T()
		hotelID, roomTypeID := s.seedRoomType(t)
		dbtest.CreateTestDiscount(t, s.DB, hotelID, "SAVE10", "percentage", "10")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, stayRequest(roomTypeID, 2, " save10 "))

		var body priceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, float64(8000), body.Pricing.Subtotal)
		require.Equal(t, float64(800), body.Pricing.Discount)
		require.Equal(t, float64(7200), body.Pricing.SubtotalAfterDiscount)
		require.Equal(t, float64(1296), body.Pricing.TaxAmount)
		require.Equal(t, float64(8496), body.Pricing.Total)
		require.Equal(t, "promo_code", body.Pricing.DiscountDetails.Source)
		require.Equal(t, "SAVE10", body.Pricing.DiscountDetails.Code)
	})

	s.Run("Normal case: unknown code is reported, not rejected", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, stayRequest(roomTypeID, 1, "NOPE"))

		var body priceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Zero(t, body.Pricing.Discount)
		require.NotEmpty(t, body.Pricing.DiscountDetails.Error)
		require.Equal(t, float64(4720), body.Pricing.Total)
	})

	s.Run("Normal case: quotes are cached in Redis", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		req := stayRequest(roomTypeID, 1, "")

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, req)
		httptest.AssertSuccessResponse(t, first, http.StatusOK, nil)

		keys, err := s.Redis.Keys(context.Background(), "hotel-quote:price:*").Result()
		require.NoError(t, err)
		require.Len(t, keys, 1)

		// the cached quote wins over a later override until it expires
		dbtest.CreateTestRateOverride(t, s.DB, roomTypeID, "2025-01-10", "9999.00")
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, req)
		httptest.AssertSuccessResponse(t, second, http.StatusOK, nil)
		require.JSONEq(t, first.Body.String(), second.Body.String())
	})

	s.Run("Error case: stay longer than the configured maximum", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)
		body := map[string]any{"room_type_id": roomTypeID, "check_in": "2025-01-10", "check_out": "9999-12-31"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_DATE_RANGE")

		keys, err := s.Redis.Keys(context.Background(), "hotel-quote:price:*").Result()
		require.NoError(t, err)
		require.Empty(t, keys)
	})

	s.Run("Error case: zero rooms", func() {
		t := s.T()
		_, roomTypeID := s.seedRoomType(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, priceURL, stayRequest(roomTypeID, 0, ""))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_ROOM_COUNT")
	})
}
