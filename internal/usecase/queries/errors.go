package queries

import (
	"context"

	"hotel-quote-engine/internal/infra"
	"hotel-quote-engine/internal/pkg/errs"
)

var (
	ErrInvalidDateRange   = errs.New("check-out must be after check-in")
	ErrInvalidRoomCount   = errs.New("number of rooms must be at least 1")
	ErrUnknownRoomType    = errs.New("room type not found")
	ErrHotelNotFound      = errs.New("hotel not found")
	ErrInvalidSearch      = errs.New("invalid search parameters")
	ErrStorageUnavailable = errs.New("storage unavailable")
)

// markStorageErr maps a failed read to notFound or ErrStorageUnavailable.
// Cancellation by the caller is passed through unmarked.
func markStorageErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindInconsistentDB):
		return err
	case errs.Is(err, context.Canceled):
		return err
	default:
		return errs.Mark(err, ErrStorageUnavailable)
	}
}
