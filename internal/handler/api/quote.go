package api

import (
	"net/http"

	reqdto "hotel-quote-engine/internal/handler/dto/request"
	resdto "hotel-quote-engine/internal/handler/dto/response"
	"hotel-quote-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Check availability
// @Description Check whether a room type can be held for every night of a stay
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /hotels/api/check-availability/ [post]
func (h *QuoteHandler) CheckAvailability(c *gin.Context) {
	req, ok := bindQuoteRequest(c)
	if !ok {
		return
	}
	availability, err := h.q.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	resp, err := resdto.FromAvailability(availability)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Calculate price
// @Description Price a stay with nightly rates, discount and GST
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Pricing request"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /hotels/api/calculate-price/ [post]
func (h *QuoteHandler) CalculatePrice(c *gin.Context) {
	req, ok := bindQuoteRequest(c)
	if !ok {
		return
	}
	breakdown, err := h.q.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}

func bindQuoteRequest(c *gin.Context) (queries.QuoteRequest, bool) {
	var body reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return queries.QuoteRequest{}, false
	}
	req, err := body.ToQuery()
	if err != nil {
		abortInvalidRequest(c, err)
		return queries.QuoteRequest{}, false
	}
	return req, true
}
