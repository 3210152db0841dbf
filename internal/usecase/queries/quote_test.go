//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/infra"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/queries"
	"hotel-quote-engine/internal/usecase/shared"
	queriesmock "hotel-quote-engine/tests/mock/queries"
	sharedmock "hotel-quote-engine/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	reads   *sharedmock.MockReads
	cache   *queriesmock.MockQuoteCache
	queries queries.QuoteQueries
}

func (s *QuoteQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockReads(s.ctrl)
	s.cache = queriesmock.NewMockQuoteCache(s.ctrl)

	policy, err := pricing.NewPolicy(nil)
	s.Require().NoError(err)
	s.queries = queries.NewQuoteQueries(s.uow, pricing.NewDefaultPriceCalculator(policy), s.cache, queries.PricingDefaults{
		Currency:      "INR",
		TaxPercentage: decimal.RequireFromString("12.00"),
		MaxStayNights: 30,
	})
}

func (s *QuoteQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQuoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueriesTestSuite))
}

// expectReadOnly runs the closure against the mocked reads.
func (s *QuoteQueriesTestSuite) expectReadOnly() {
	s.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Reads) error) error {
			return fn(ctx, s.reads)
		}).Times(1)
}

func (s *QuoteQueriesTestSuite) date(v string) stay.Date {
	d, err := stay.ParseDate(v)
	s.Require().NoError(err)
	return d
}

func (s *QuoteQueriesTestSuite) money(v string) pricing.Money {
	m, err := pricing.ParseMoney(v)
	s.Require().NoError(err)
	return m
}

func (s *QuoteQueriesTestSuite) request() queries.QuoteRequest {
	return queries.QuoteRequest{
		RoomTypeID: 7,
		CheckIn:    s.date("2024-12-01"),
		CheckOut:   s.date("2024-12-04"),
		Rooms:      1,
	}
}

func (s *QuoteQueriesTestSuite) roomType() *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:         7,
		HotelID:    3,
		Name:       "Deluxe",
		BasePrice:  s.money("2000.00"),
		TotalRooms: 10,
		Available:  true,
	}
}

func notFound() error {
	return infra.WrapRepoErr("room type not found", errors.New("no rows"), infra.KindNotFound)
}

// ================================================================================
// CalculatePrice
// ================================================================================

func (s *QuoteQueriesTestSuite) TestCalculatePrice() {
	s.Run("success: default tax applies when the hotel has none", func() {
		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.Require().NoError(err)
		s.Equal("6000", b.Subtotal.String())
		s.Equal("720", b.TaxAmount.String())
		s.Equal("6720", b.Total.String())
		s.Equal("INR", b.Currency)
		s.True(b.TaxPercentage.Equal(decimal.RequireFromString("12")))
		s.Len(b.NightlyRates, 3)
	})

	s.Run("success: hotel tax and rate override", func() {
		rt := s.roomType()
		tax := decimal.RequireFromString("18.00")
		rt.TaxPercentage = &tax

		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(rt, nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).Return([]pricing.RateOverride{
			{Date: s.date("2024-12-02"), Price: s.money("3000.00"), Reason: "festival"},
		}, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.Require().NoError(err)
		s.Equal("7000", b.Subtotal.String())
		s.Equal("1260", b.TaxAmount.String())
		s.Equal("8260", b.Total.String())
	})

	s.Run("success: unknown code is reported without failing", func() {
		req := s.request()
		req.DiscountCode = " nope "

		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)
		s.reads.EXPECT().PromoByCode(gomock.Any(), int64(3), "nope").Return(nil, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.queries.CalculatePrice(context.Background(), req)

		s.Require().NoError(err)
		s.True(b.Discount.IsZero())
		s.Equal(pricing.ErrPromoUnknown.Error(), b.DiscountDetails.Error)
		s.Equal("nope", b.DiscountDetails.Code)
	})

	s.Run("success: cached breakdown skips storage", func() {
		cached := &pricing.PriceBreakdown{RoomTypeID: 7, Total: s.money("1.00")}
		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true, nil)

		b, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.Require().NoError(err)
		s.Same(cached, b)
	})

	s.Run("success: cache failures are ignored", func() {
		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		b, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.Require().NoError(err)
		s.Equal("6720", b.Total.String())
	})

	s.Run("success: same request maps to the same cache key", func() {
		var keys []string
		for _, code := range []string{"save20", " SAVE20"} {
			req := s.request()
			req.DiscountCode = code
			s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string) (*pricing.PriceBreakdown, bool, error) {
					keys = append(keys, key)
					return &pricing.PriceBreakdown{}, true, nil
				})
			_, err := s.queries.CalculatePrice(context.Background(), req)
			s.Require().NoError(err)
		}
		s.Require().Len(keys, 2)
		s.Equal(keys[0], keys[1])
	})

	s.Run("error: check-out not after check-in", func() {
		req := s.request()
		req.CheckOut = req.CheckIn

		_, err := s.queries.CalculatePrice(context.Background(), req)

		s.True(errs.Is(err, queries.ErrInvalidDateRange))
	})

	s.Run("error: stay longer than the configured maximum", func() {
		req := s.request()
		req.CheckOut = s.date("9999-12-31")

		_, err := s.queries.CalculatePrice(context.Background(), req)

		s.True(errs.Is(err, queries.ErrInvalidDateRange))
		s.True(errs.Is(err, stay.ErrRangeTooLong))
	})

	s.Run("success: stay of exactly the maximum", func() {
		req := s.request()
		req.CheckOut = req.CheckIn.AddDays(30)

		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := s.queries.CalculatePrice(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(30, b.Nights)
		s.Len(b.NightlyRates, 30)
	})

	s.Run("error: zero rooms", func() {
		req := s.request()
		req.Rooms = 0

		_, err := s.queries.CalculatePrice(context.Background(), req)

		s.True(errs.Is(err, queries.ErrInvalidRoomCount))
	})

	s.Run("error: date range is checked before rooms", func() {
		req := s.request()
		req.CheckOut = req.CheckIn
		req.Rooms = 0

		_, err := s.queries.CalculatePrice(context.Background(), req)

		s.True(errs.Is(err, queries.ErrInvalidDateRange))
	})

	s.Run("error: unknown room type", func() {
		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(nil, notFound())

		_, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.True(errs.Is(err, queries.ErrUnknownRoomType))
		s.False(errs.Is(err, queries.ErrStorageUnavailable))
	})

	s.Run("error: storage failure", func() {
		s.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().RateOverrides(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list rate overrides", errors.New("connection reset")))

		_, err := s.queries.CalculatePrice(context.Background(), s.request())

		s.True(errs.Is(err, queries.ErrStorageUnavailable))
	})
}

// ================================================================================
// CheckAvailability
// ================================================================================

func (s *QuoteQueriesTestSuite) TestCheckAvailability() {
	s.Run("success: binding night decides availability", func() {
		req := s.request()
		req.Rooms = 3

		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().InventoryRecords(gomock.Any(), int64(7), gomock.Any()).Return([]inventory.Record{
			{Date: s.date("2024-12-01"), TotalRooms: 10, BookedRooms: 5},
			{Date: s.date("2024-12-02"), TotalRooms: 10, BookedRooms: 8},
		}, nil)

		a, err := s.queries.CheckAvailability(context.Background(), req)

		s.Require().NoError(err)
		s.False(a.IsAvailable)
		s.Equal(2, a.MinFreeRooms)
		s.Equal(s.date("2024-12-02"), a.BindingDate)
		s.Equal(3, a.Nights)
	})

	s.Run("success: closed room type has no free rooms", func() {
		rt := s.roomType()
		rt.Available = false

		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(rt, nil)
		s.reads.EXPECT().InventoryRecords(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)

		a, err := s.queries.CheckAvailability(context.Background(), s.request())

		s.Require().NoError(err)
		s.False(a.IsAvailable)
		s.Equal(0, a.MinFreeRooms)
	})

	s.Run("error: stay longer than the configured maximum", func() {
		req := s.request()
		req.CheckOut = req.CheckIn.AddDays(31)

		_, err := s.queries.CheckAvailability(context.Background(), req)

		s.True(errs.Is(err, queries.ErrInvalidDateRange))
	})

	s.Run("error: unknown room type", func() {
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(nil, notFound())

		_, err := s.queries.CheckAvailability(context.Background(), s.request())

		s.True(errs.Is(err, queries.ErrUnknownRoomType))
	})

	s.Run("error: inconsistent inventory row", func() {
		s.expectReadOnly()
		s.reads.EXPECT().RoomTypeForQuote(gomock.Any(), int64(7)).Return(s.roomType(), nil)
		s.reads.EXPECT().InventoryRecords(gomock.Any(), int64(7), gomock.Any()).Return([]inventory.Record{
			{Date: s.date("2024-12-01"), TotalRooms: 4, BookedRooms: 5},
		}, nil)

		_, err := s.queries.CheckAvailability(context.Background(), s.request())

		s.True(errs.Is(err, inventory.ErrInconsistentInventory))
		s.False(errs.Is(err, queries.ErrStorageUnavailable))
	})
}
