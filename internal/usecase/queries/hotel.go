package queries

import (
	"context"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/clock"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/shared"
)

const (
	DefaultPageSize      = 10
	MaxPageSize          = 100
	DefaultOccupancyDays = 7
)

type SearchParams struct {
	Filter   catalog.Filter
	Sort     catalog.SortKey
	Page     int
	PageSize int
}

type HotelPage struct {
	Count    int
	Page     int
	PageSize int
	HasNext  bool
	Results  []catalog.HotelSummary
}

type RoomTypeOccupancy struct {
	RoomTypeID int64
	Name       string
	inventory.Occupancy
}

type HotelOccupancy struct {
	HotelID   int64
	HotelName string
	Start     stay.Date
	End       stay.Date
	inventory.Occupancy
	RoomTypes []RoomTypeOccupancy
}

// CatalogSource hands out the current catalog snapshot.
type CatalogSource interface {
	Index() (*catalog.Index, bool)
}

type HotelQueries interface {
	Search(ctx context.Context, params SearchParams) (*HotelPage, error)
	GetByID(ctx context.Context, id int64) (*hotel.Hotel, error)
	Occupancy(ctx context.Context, hotelID int64, start, end *stay.Date) (*HotelOccupancy, error)
}

type hotelQueriesImpl struct {
	uow      shared.UnitOfWork
	catalog  CatalogSource
	calendar *stay.Calendar
	clock    clock.Clock
	defaults PricingDefaults
}

func NewHotelQueries(uow shared.UnitOfWork, source CatalogSource, calendar *stay.Calendar, clk clock.Clock, defaults PricingDefaults) HotelQueries {
	return &hotelQueriesImpl{
		uow:      uow,
		catalog:  source,
		calendar: calendar,
		clock:    clk,
		defaults: defaults,
	}
}

// NormalizePage applies the default and maximum page sizes. Pages start at 1.
func NormalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, ErrInvalidSearch
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return page, min(pageSize, MaxPageSize), nil
}

func (q *hotelQueriesImpl) Search(_ context.Context, params SearchParams) (*HotelPage, error) {
	if err := params.Filter.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidSearch)
	}
	page, size, err := NormalizePage(params.Page, params.PageSize)
	if err != nil {
		return nil, err
	}
	sortKey := params.Sort
	if sortKey == "" {
		sortKey = catalog.SortByName
	}

	ix, ok := q.catalog.Index()
	if !ok {
		return nil, errs.Mark(errs.New("catalog not loaded"), ErrStorageUnavailable)
	}

	seq := ix.Search(params.Filter, sortKey)
	items, hasMore := catalog.Page(seq, (page-1)*size, size)
	return &HotelPage{
		Count:    catalog.Count(seq),
		Page:     page,
		PageSize: size,
		HasNext:  hasMore,
		Results:  items,
	}, nil
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	var h *hotel.Hotel
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		h, err = reads.HotelByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, markStorageErr(err, ErrHotelNotFound)
	}
	if h.TaxPercentage == nil {
		tax := q.defaults.TaxPercentage
		h.TaxPercentage = &tax
	}
	return h, nil
}

// Occupancy covers [start, end). Missing bounds default to today in the
// reference zone and DefaultOccupancyDays after start.
func (q *hotelQueriesImpl) Occupancy(ctx context.Context, hotelID int64, start, end *stay.Date) (*HotelOccupancy, error) {
	from := q.calendar.Today(q.clock.Now())
	if start != nil {
		from = *start
	}
	to := from.AddDays(DefaultOccupancyDays)
	if end != nil {
		to = *end
	}
	dr, err := stay.NewDateRange(from, to)
	if err == nil {
		err = dr.Limit(q.defaults.MaxOccupancyDays)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var (
		h       *hotel.Hotel
		records map[int64][]inventory.Record
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		if h, err = reads.HotelByID(ctx, hotelID); err != nil {
			return err
		}
		records, err = reads.HotelInventory(ctx, hotelID, dr)
		return err
	})
	if err != nil {
		return nil, markStorageErr(err, ErrHotelNotFound)
	}

	ledgers := make([]*inventory.Ledger, 0, len(h.RoomTypes))
	perRoom := make([]RoomTypeOccupancy, 0, len(h.RoomTypes))
	for _, rt := range h.RoomTypes {
		l, err := inventory.NewLedger(rt.ID, rt.TotalRooms, records[rt.ID])
		if err != nil {
			return nil, errs.Wrapf(err, "room type %d", rt.ID)
		}
		ledgers = append(ledgers, l)
		perRoom = append(perRoom, RoomTypeOccupancy{
			RoomTypeID: rt.ID,
			Name:       rt.Name,
			Occupancy:  inventory.OccupancyOf(dr, l),
		})
	}

	return &HotelOccupancy{
		HotelID:   h.ID,
		HotelName: h.Name,
		Start:     dr.CheckIn(),
		End:       dr.CheckOut(),
		Occupancy: inventory.OccupancyOf(dr, ledgers...),
		RoomTypes: perRoom,
	}, nil
}
