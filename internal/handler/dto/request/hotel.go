package request

import (
	"strconv"
	"strings"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/queries"
)

type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// SearchQuery mirrors the query string of /hotels/api/search/. city_id also
// accepts a city name.
type SearchQuery struct {
	PageQuery
	CityID        string `form:"city_id"`
	MinPrice      string `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice      string `form:"max_price" binding:"omitempty,numeric"`
	StarRating    *int   `form:"star_rating" binding:"omitempty,min=1,max=5"`
	HasWifi       bool   `form:"has_wifi"`
	HasParking    bool   `form:"has_parking"`
	HasPool       bool   `form:"has_pool"`
	HasGym        bool   `form:"has_gym"`
	HasRestaurant bool   `form:"has_restaurant"`
	HasSpa        bool   `form:"has_spa"`
	SortBy        string `form:"sort_by"`
}

func (q SearchQuery) ToParams() (queries.SearchParams, error) {
	sortKey, err := catalog.ParseSortKey(q.SortBy)
	if err != nil {
		return queries.SearchParams{}, err
	}

	var f catalog.Filter
	if city := strings.TrimSpace(q.CityID); city != "" {
		if id, err := strconv.ParseInt(city, 10, 64); err == nil {
			f.CityID = &id
		} else {
			f.CityName = city
		}
	}
	if f.MinPrice, err = optionalMoney(q.MinPrice); err != nil {
		return queries.SearchParams{}, errs.Wrap(err, "min_price")
	}
	if f.MaxPrice, err = optionalMoney(q.MaxPrice); err != nil {
		return queries.SearchParams{}, errs.Wrap(err, "max_price")
	}
	f.StarRating = q.StarRating

	wanted := []struct {
		on bool
		a  catalog.Amenity
	}{
		{q.HasWifi, catalog.AmenityWifi},
		{q.HasParking, catalog.AmenityParking},
		{q.HasPool, catalog.AmenityPool},
		{q.HasGym, catalog.AmenityGym},
		{q.HasRestaurant, catalog.AmenityRestaurant},
		{q.HasSpa, catalog.AmenitySpa},
	}
	for _, w := range wanted {
		if w.on {
			f.Amenities = f.Amenities.With(w.a)
		}
	}

	return queries.SearchParams{
		Filter:   f,
		Sort:     sortKey,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func optionalMoney(s string) (*pricing.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := pricing.ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type OccupancyQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,isodate"`
	EndDate   string `form:"end_date" binding:"omitempty,isodate"`
}

// Bounds returns nil for an omitted date.
func (q OccupancyQuery) Bounds() (start, end *stay.Date, err error) {
	if start, err = optionalDate(q.StartDate); err != nil {
		return nil, nil, errs.Wrap(err, "start_date")
	}
	if end, err = optionalDate(q.EndDate); err != nil {
		return nil, nil, errs.Wrap(err, "end_date")
	}
	return start, end, nil
}

func optionalDate(s string) (*stay.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := stay.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
