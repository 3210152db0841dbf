package queries

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"

	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	RoomTypeID   int64
	CheckIn      stay.Date
	CheckOut     stay.Date
	Rooms        int
	DiscountCode string
}

// validate checks the date range before the room count.
func (r QuoteRequest) validate(maxNights int) (stay.DateRange, error) {
	dr, err := stay.NewDateRange(r.CheckIn, r.CheckOut)
	if err == nil {
		err = dr.Limit(maxNights)
	}
	if err != nil {
		return stay.DateRange{}, errs.Mark(err, ErrInvalidDateRange)
	}
	if r.Rooms < 1 {
		return stay.DateRange{}, ErrInvalidRoomCount
	}
	return dr, nil
}

// cacheKey identifies a price request; the code is case-insensitive.
func (r QuoteRequest) cacheKey() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(r.RoomTypeID, 10))
	b.WriteByte('|')
	b.WriteString(r.CheckIn.String())
	b.WriteByte('|')
	b.WriteString(r.CheckOut.String())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(r.Rooms))
	b.WriteByte('|')
	b.WriteString(strings.ToUpper(strings.TrimSpace(r.DiscountCode)))
	sum := sha256.Sum256([]byte(b.String()))
	return "price:" + hex.EncodeToString(sum[:])
}

type QuoteQueries interface {
	CheckAvailability(ctx context.Context, req QuoteRequest) (*inventory.Availability, error)
	CalculatePrice(ctx context.Context, req QuoteRequest) (*pricing.PriceBreakdown, error)
}

type QuoteCache interface {
	Get(ctx context.Context, key string) (*pricing.PriceBreakdown, bool, error)
	Set(ctx context.Context, key string, b *pricing.PriceBreakdown) error
}

// PricingDefaults apply when a hotel does not carry its own values.
// A zero maximum means no limit on the range length.
type PricingDefaults struct {
	Currency         string
	TaxPercentage    decimal.Decimal
	MaxStayNights    int
	MaxOccupancyDays int
}

type quoteQueriesImpl struct {
	uow      shared.UnitOfWork
	calc     pricing.PriceCalculator
	cache    QuoteCache
	defaults PricingDefaults
}

func NewQuoteQueries(uow shared.UnitOfWork, calc pricing.PriceCalculator, cache QuoteCache, defaults PricingDefaults) QuoteQueries {
	return &quoteQueriesImpl{
		uow:      uow,
		calc:     calc,
		cache:    cache,
		defaults: defaults,
	}
}

func (q *quoteQueriesImpl) CheckAvailability(ctx context.Context, req QuoteRequest) (*inventory.Availability, error) {
	dr, err := req.validate(q.defaults.MaxStayNights)
	if err != nil {
		return nil, err
	}

	var (
		rt      *shared.RoomTypeSnapshot
		records []inventory.Record
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		if rt, err = reads.RoomTypeForQuote(ctx, req.RoomTypeID); err != nil {
			return err
		}
		if records, err = reads.InventoryRecords(ctx, rt.ID, dr); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, markStorageErr(err, ErrUnknownRoomType)
	}

	var opts []inventory.LedgerOption
	if !rt.Available {
		opts = append(opts, inventory.ClosedForSale())
	}
	ledger, err := inventory.NewLedger(rt.ID, rt.TotalRooms, records, opts...)
	if err != nil {
		return nil, errs.Wrapf(err, "room type %d", rt.ID)
	}

	availability, err := ledger.Check(dr, req.Rooms)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (q *quoteQueriesImpl) CalculatePrice(ctx context.Context, req QuoteRequest) (*pricing.PriceBreakdown, error) {
	dr, err := req.validate(q.defaults.MaxStayNights)
	if err != nil {
		return nil, err
	}

	key := req.cacheKey()
	if cached, ok, err := q.cache.Get(ctx, key); err != nil {
		slog.WarnContext(ctx, "quote cache read failed", "error", err.Error())
	} else if ok {
		return cached, nil
	}

	code := strings.TrimSpace(req.DiscountCode)
	var (
		rt        *shared.RoomTypeSnapshot
		overrides []pricing.RateOverride
		promo     *pricing.PromoCode
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		if rt, err = reads.RoomTypeForQuote(ctx, req.RoomTypeID); err != nil {
			return err
		}
		if overrides, err = reads.RateOverrides(ctx, rt.ID, dr); err != nil {
			return err
		}
		if code != "" {
			if promo, err = reads.PromoByCode(ctx, rt.HotelID, code); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, markStorageErr(err, ErrUnknownRoomType)
	}

	rates, err := pricing.NewRateTable(rt.ID, rt.BasePrice, overrides)
	if err != nil {
		return nil, errs.Wrapf(err, "room type %d", rt.ID)
	}

	tax := q.defaults.TaxPercentage
	if rt.TaxPercentage != nil {
		tax = *rt.TaxPercentage
	}

	breakdown, err := q.calc.Breakdown(pricing.QuoteInput{
		Rates:         rates,
		Stay:          dr,
		Rooms:         req.Rooms,
		TaxPercentage: tax,
		Currency:      q.defaults.Currency,
		DiscountCode:  code,
		Promo:         promo,
	})
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, key, &breakdown); err != nil {
		slog.WarnContext(ctx, "quote cache write failed", "error", err.Error())
	}
	return &breakdown, nil
}
