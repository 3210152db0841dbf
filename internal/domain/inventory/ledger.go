package inventory

import (
	"errors"

	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/jsonnum"

	"github.com/shopspring/decimal"
)

var (
	ErrInconsistentInventory = errors.New("booked rooms must be between 0 and total rooms")
	ErrInvalidRoomCount      = errors.New("number of rooms must be at least 1")
)

// Record is the stored inventory of one room type on one date.
type Record struct {
	Date        stay.Date
	TotalRooms  int
	BookedRooms int
}

func (r Record) FreeRooms() int { return r.TotalRooms - r.BookedRooms }

// Ledger answers free inventory per night for a single room type. Dates
// without a record fall back to the room type's total rooms with no bookings.
type Ledger struct {
	roomTypeID   int64
	defaultTotal int
	closed       bool
	records      map[int64]Record
}

type LedgerOption func(*Ledger)

// ClosedForSale marks the room type as not bookable on any date.
func ClosedForSale() LedgerOption {
	return func(l *Ledger) { l.closed = true }
}

func NewLedger(roomTypeID int64, defaultTotal int, records []Record, opts ...LedgerOption) (*Ledger, error) {
	if defaultTotal < 0 {
		return nil, ErrInconsistentInventory
	}
	l := &Ledger{
		roomTypeID:   roomTypeID,
		defaultTotal: defaultTotal,
		records:      make(map[int64]Record, len(records)),
	}
	for _, r := range records {
		if r.TotalRooms < 0 || r.BookedRooms < 0 || r.BookedRooms > r.TotalRooms {
			return nil, ErrInconsistentInventory
		}
		l.records[r.Date.DayNumber()] = r
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Ledger) RoomTypeID() int64 { return l.roomTypeID }

func (l *Ledger) record(d stay.Date) Record {
	if r, ok := l.records[d.DayNumber()]; ok {
		return r
	}
	return Record{Date: d, TotalRooms: l.defaultTotal}
}

func (l *Ledger) FreeRooms(d stay.Date) int {
	if l.closed {
		return 0
	}
	return l.record(d).FreeRooms()
}

type Availability struct {
	RoomTypeID     int64     `json:"room_type_id"`
	IsAvailable    bool      `json:"is_available"`
	MinFreeRooms   int       `json:"min_available_rooms"`
	BindingDate    stay.Date `json:"binding_date"`
	RequestedRooms int       `json:"requested_rooms"`
	Nights         int       `json:"num_nights"`
}

// Check reports whether rooms can be held on every night of the stay. The
// binding date is the first night with the least free inventory.
func (l *Ledger) Check(r stay.DateRange, rooms int) (Availability, error) {
	nights := r.Nights()
	if nights < 1 {
		return Availability{}, stay.ErrInvalidDateRange
	}
	if rooms < 1 {
		return Availability{}, ErrInvalidRoomCount
	}

	minFree := -1
	var binding stay.Date
	for d := range r.Dates() {
		free := l.FreeRooms(d)
		if minFree < 0 || free < minFree {
			minFree = free
			binding = d
		}
	}

	return Availability{
		RoomTypeID:     l.roomTypeID,
		IsAvailable:    minFree >= rooms,
		MinFreeRooms:   minFree,
		BindingDate:    binding,
		RequestedRooms: rooms,
		Nights:         nights,
	}, nil
}

type DayOccupancy struct {
	Date        stay.Date `json:"date"`
	TotalRooms  int       `json:"total_rooms"`
	BookedRooms int       `json:"booked_rooms"`
}

type Occupancy struct {
	TotalRoomNights  int             `json:"total_room_nights"`
	BookedRoomNights int             `json:"booked_room_nights"`
	Rate             jsonnum.Decimal `json:"occupancy_rate"`
	Days             []DayOccupancy  `json:"days"`
}

// OccupancyOf sums booked and total room-nights over the range. Rate is a
// percentage rounded to two places, zero when there is no inventory.
func OccupancyOf(r stay.DateRange, ledgers ...*Ledger) Occupancy {
	days := make([]DayOccupancy, 0, r.Nights())
	var total, booked int
	for d := range r.Dates() {
		day := DayOccupancy{Date: d}
		for _, l := range ledgers {
			rec := l.record(d)
			day.TotalRooms += rec.TotalRooms
			day.BookedRooms += rec.BookedRooms
		}
		total += day.TotalRooms
		booked += day.BookedRooms
		days = append(days, day)
	}
	return Occupancy{
		TotalRoomNights:  total,
		BookedRoomNights: booked,
		Rate:             jsonnum.New(occupancyRate(booked, total)),
		Days:             days,
	}
}

func occupancyRate(booked, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(booked)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
}
