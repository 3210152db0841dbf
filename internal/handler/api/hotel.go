package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-quote-engine/internal/handler/dto/request"
	resdto "hotel-quote-engine/internal/handler/dto/response"
	"hotel-quote-engine/internal/handler/httperr"
	"hotel-quote-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary Search hotels
// @Description Filter, sort and paginate the hotel catalog
// @Tags hotels
// @Produce json
// @Param city_id query string false "City id or name"
// @Param min_price query number false "Minimum room price"
// @Param max_price query number false "Maximum room price"
// @Param star_rating query int false "Star rating (1-5)"
// @Param has_wifi query bool false "Require wifi"
// @Param sort_by query string false "name, price_asc, price_desc, rating_asc, rating_desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} resdto.HotelPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /hotels/api/search/ [get]
func (h *HotelHandler) Search(c *gin.Context) {
	var query reqdto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	h.respondPage(c, params)
}

// @Summary List hotels
// @Description All active hotels sorted by name
// @Tags hotels
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} resdto.HotelPageResponse
// @Failure 503 {object} httperr.Response
// @Router /hotels/api/list/ [get]
func (h *HotelHandler) List(c *gin.Context) {
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	h.respondPage(c, queries.SearchParams{Page: query.Page, PageSize: query.PageSize})
}

func (h *HotelHandler) respondPage(c *gin.Context, params queries.SearchParams) {
	page, err := h.q.Search(c.Request.Context(), params)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelPage(page))
}

// @Summary Get hotel
// @Description Hotel detail with room types and active discount codes
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/api/{id}/ [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}
	detail, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	resp, err := resdto.FromHotel(detail)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Hotel occupancy
// @Description Booked versus total room-nights over [start_date, end_date)
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Param start_date query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param end_date query string false "End date (YYYY-MM-DD), defaults to start + 7 days"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/api/{id}/occupancy/ [get]
func (h *HotelHandler) Occupancy(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}
	var query reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	start, end, err := query.Bounds()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	occ, err := h.q.Occupancy(c.Request.Context(), id, start, end)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancy(occ))
}

func hotelID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
