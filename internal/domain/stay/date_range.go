package stay

import (
	"errors"
	"iter"
)

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrRangeTooLong     = errors.New("date range is longer than allowed")
)

// DateRange is the half-open stay interval [checkIn, checkOut).
type DateRange struct {
	checkIn  Date
	checkOut Date
}

func NewDateRange(checkIn, checkOut Date) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if !checkOut.After(checkIn) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func NightCount(checkIn, checkOut Date) (int, error) {
	r, err := NewDateRange(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return r.Nights(), nil
}

func (r DateRange) CheckIn() Date  { return r.checkIn }
func (r DateRange) CheckOut() Date { return r.checkOut }

func (r DateRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

// Limit fails with ErrRangeTooLong when the range has more than maxNights
// nights. A maxNights below 1 means no limit.
func (r DateRange) Limit(maxNights int) error {
	if maxNights > 0 && r.Nights() > maxNights {
		return ErrRangeTooLong
	}
	return nil
}

// LastNight is the final date whose night is part of the stay.
func (r DateRange) LastNight() Date {
	return r.checkOut.AddDays(-1)
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// Dates yields every night of the stay in order.
func (r DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.checkIn; d.Before(r.checkOut); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}
