//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/handler/api"
	resdto "hotel-quote-engine/internal/handler/dto/response"
	"hotel-quote-engine/internal/handler/validation"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/queries"
	"hotel-quote-engine/tests/common/builder"
	"hotel-quote-engine/tests/common/httptest"
	"hotel-quote-engine/tests/common/testutil"
	queriesmock "hotel-quote-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	availabilityURL = "/hotels/api/check-availability/"
	priceURL        = "/hotels/api/calculate-price/"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.POST(availabilityURL, s.handler.CheckAvailability)
	s.router.POST(priceURL, s.handler.CalculatePrice)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCheckAvailability() {
	b := builder.NewQuoteBuilder().With(func(q *builder.QuoteBuilder) { q.Rooms = 2 })
	reqBody := b.BuildRequestDTO()
	availability := b.BuildAvailability(5)

	s.Run("success: returns availability envelope", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), b.BuildQuery()).
			Return(availability, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, availabilityURL, reqBody)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.True(body.Availability.IsAvailable)
		s.Equal(5, body.Availability.MinFreeRooms)
		s.Equal(2, body.Availability.RequestedRooms)
		s.Equal(2, body.Availability.Nights)
		s.Equal("2024-12-01", body.Availability.BindingDate.String())
		s.Contains(rec.Body.String(), `"min_available_rooms":5`)
	})

	s.Run("success: num_rooms defaults to one", func() {
		var got queries.QuoteRequest
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*inventory.Availability, error) {
				got = req
				return availability, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("num_rooms", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, availabilityURL, body)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(1, got.Rooms)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedCode   string
		}{
			{"inverted stay", errs.Mark(errors.New("nights"), queries.ErrInvalidDateRange), http.StatusBadRequest, "INVALID_DATE_RANGE"},
			{"zero rooms", queries.ErrInvalidRoomCount, http.StatusBadRequest, "INVALID_ROOM_COUNT"},
			{"unknown room type", errs.Mark(errors.New("no rows"), queries.ErrUnknownRoomType), http.StatusNotFound, "UNKNOWN_ROOM_TYPE"},
			{"database down", errs.Mark(errors.New("dial tcp"), queries.ErrStorageUnavailable), http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
					Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, availabilityURL, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestCalculatePrice
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCalculatePrice() {
	b := builder.NewQuoteBuilder().With(func(q *builder.QuoteBuilder) { q.DiscountCode = "SAVE10" })
	reqBody := b.BuildRequestDTO()
	breakdown := b.BuildBreakdown()

	// Validation boundary cases
	bound := []testCaseQuote{
		{name: "room_type_id invalid (0)", mutate: testutil.Field("room_type_id", 0), expectCode: http.StatusBadRequest},
		{name: "room_type_id invalid (-1)", mutate: testutil.Field("room_type_id", -1), expectCode: http.StatusBadRequest},
		{name: "discount_code length OK (50 chars)", mutate: testutil.Field("discount_code", strings.Repeat("A", 50)), expectCode: http.StatusOK},
		{name: "discount_code length invalid (51 chars)", mutate: testutil.Field("discount_code", strings.Repeat("A", 51)), expectCode: http.StatusBadRequest},
		{name: "empty discount_code", mutate: testutil.Field("discount_code", ""), expectCode: http.StatusOK},
	}

	missing := []testCaseQuote{
		{name: "missing field: room_type_id (required)", mutate: testutil.Field("room_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseQuote{
		{name: "check_in not a calendar date", mutate: testutil.Field("check_in", "2024-02-30"), expectCode: http.StatusBadRequest},
		{name: "check_out wrong layout", mutate: testutil.Field("check_out", "03/12/2024"), expectCode: http.StatusBadRequest},
		{name: "num_rooms not a number", mutate: testutil.Field("num_rooms", "two"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseQuote{bound, missing, malformed}

	s.Run("success: returns pricing envelope", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), b.BuildQuery()).
			Return(breakdown, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, reqBody)

		var body struct {
			Success bool           `json:"success"`
			Pricing map[string]any `json:"pricing"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(float64(6000), body.Pricing["subtotal"])
		s.Equal(float64(720), body.Pricing["gst_amount"])
		s.Equal(float64(6720), body.Pricing["total_amount"])
		s.Equal("INR", body.Pricing["currency"])
		s.Len(body.Pricing["nightly_rates"], 2)
	})

	s.Run("success: trims the discount code", func() {
		var got queries.QuoteRequest
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*pricing.PriceBreakdown, error) {
				got = req
				return breakdown, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("discount_code", "  SAVE10 "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, body)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("SAVE10", got.DiscountCode)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).
							Return(breakdown, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, requestMap)
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "INVALID_REQUEST")
					}
				})
			}
		}
	})

	s.Run("error: 400 with field details for failed rules", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("check_in", "tomorrow"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
		s.Contains(rec.Body.String(), `"rule":"isodate"`)
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, `{"room_type_id": `)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: zero rooms reaches the usecase", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidRoomCount).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("num_rooms", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ROOM_COUNT")
	})
}
