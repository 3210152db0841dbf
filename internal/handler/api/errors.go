package api

import (
	"net/http"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/handler/httperr"
	"hotel-quote-engine/internal/handler/validation"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func abortInvalidRequest(c *gin.Context, err error) {
	var detail any
	if d := validation.Details(err); d != nil {
		detail = d
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid request", detail)
}

// abortWithQueryError maps the query error taxonomy onto status and code.
func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidDateRange, "Check-out date must be after check-in date", nil)
	case errs.Is(err, queries.ErrInvalidRoomCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRoomCount, "Number of rooms must be at least 1", nil)
	case errs.IsAny(err, queries.ErrInvalidSearch, catalog.ErrUnknownSortKey):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid search parameters", nil)
	case errs.Is(err, queries.ErrUnknownRoomType):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeUnknownRoomType, "Room type not found", nil)
	case errs.Is(err, queries.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeHotelNotFound, "Hotel not found", nil)
	case errs.Is(err, queries.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, httperr.CodeStorageUnavailable, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
	}
}
