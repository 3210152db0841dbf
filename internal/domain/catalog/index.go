package catalog

import (
	"cmp"
	"errors"
	"iter"
	"slices"
	"strings"

	"hotel-quote-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrInvalidFilter  = errors.New("invalid search filter")
)

type HotelSummary struct {
	ID           int64
	Name         string
	CityID       int64
	CityName     string
	StarRating   int
	ReviewRating decimal.Decimal
	ReviewCount  int
	Amenities    AmenitySet
	// MinPrice is the lowest room type base price, zero when the hotel has none.
	MinPrice  pricing.Money
	ImageURL  string
	Featured  bool
	Address   string
	Latitude  *decimal.Decimal
	Longitude *decimal.Decimal
}

type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPriceAsc   SortKey = "price_asc"
	SortByPriceDesc  SortKey = "price_desc"
	SortByRatingAsc  SortKey = "rating_asc"
	SortByRatingDesc SortKey = "rating_desc"
)

var sortKeys = []SortKey{SortByName, SortByPriceAsc, SortByPriceDesc, SortByRatingAsc, SortByRatingDesc}

// ParseSortKey maps an empty key to SortByName.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByName, nil
	}
	k := SortKey(strings.ToLower(s))
	if !slices.Contains(sortKeys, k) {
		return "", ErrUnknownSortKey
	}
	return k, nil
}

type Filter struct {
	CityID     *int64
	CityName   string
	MinPrice   *pricing.Money
	MaxPrice   *pricing.Money
	StarRating *int
	Amenities  AmenitySet
}

func (f Filter) Validate() error {
	if f.StarRating != nil && (*f.StarRating < 1 || *f.StarRating > 5) {
		return ErrInvalidFilter
	}
	if (f.MinPrice != nil && f.MinPrice.IsNegative()) || (f.MaxPrice != nil && f.MaxPrice.IsNegative()) {
		return ErrInvalidFilter
	}
	return nil
}

// Match applies every set criterion; an empty filter matches all hotels.
func (f Filter) Match(h HotelSummary) bool {
	if f.CityID != nil && h.CityID != *f.CityID {
		return false
	}
	if f.CityName != "" && !strings.EqualFold(h.CityName, f.CityName) {
		return false
	}
	if f.StarRating != nil && h.StarRating != *f.StarRating {
		return false
	}
	if f.MinPrice != nil && h.MinPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && h.MinPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	return h.Amenities.Contains(f.Amenities)
}

// Index is an immutable catalog snapshot with one precomputed order per sort key.
type Index struct {
	hotels []HotelSummary
	orders map[SortKey][]int
}

// NewIndex keeps the given order as the tie breaker for every sort key.
func NewIndex(hotels []HotelSummary) *Index {
	ix := &Index{
		hotels: slices.Clone(hotels),
		orders: make(map[SortKey][]int, len(sortKeys)),
	}
	for _, k := range sortKeys {
		order := make([]int, len(ix.hotels))
		for i := range order {
			order[i] = i
		}
		less := ix.comparator(k)
		slices.SortStableFunc(order, func(a, b int) int {
			return less(ix.hotels[a], ix.hotels[b])
		})
		ix.orders[k] = order
	}
	return ix
}

func (ix *Index) comparator(k SortKey) func(a, b HotelSummary) int {
	switch k {
	case SortByPriceAsc:
		return func(a, b HotelSummary) int { return a.MinPrice.Cmp(b.MinPrice) }
	case SortByPriceDesc:
		return func(a, b HotelSummary) int { return b.MinPrice.Cmp(a.MinPrice) }
	case SortByRatingAsc:
		return func(a, b HotelSummary) int { return a.ReviewRating.Cmp(b.ReviewRating) }
	case SortByRatingDesc:
		return func(a, b HotelSummary) int { return b.ReviewRating.Cmp(a.ReviewRating) }
	default:
		return func(a, b HotelSummary) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
}

func (ix *Index) Len() int { return len(ix.hotels) }

// Search yields matching hotels lazily in sort order. The sequence can be ranged
// over any number of times.
func (ix *Index) Search(f Filter, k SortKey) iter.Seq[HotelSummary] {
	order, ok := ix.orders[k]
	if !ok {
		order = ix.orders[SortByName]
	}
	return func(yield func(HotelSummary) bool) {
		for _, i := range order {
			h := ix.hotels[i]
			if !f.Match(h) {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// Page collects up to limit items after skipping offset, pulling one extra item
// to answer hasMore and nothing past it.
func Page(seq iter.Seq[HotelSummary], offset, limit int) (items []HotelSummary, hasMore bool) {
	if limit <= 0 {
		return nil, false
	}
	items = make([]HotelSummary, 0, limit)
	skipped := 0
	for h := range seq {
		if skipped < offset {
			skipped++
			continue
		}
		if len(items) == limit {
			hasMore = true
			break
		}
		items = append(items, h)
	}
	return items, hasMore
}

func Count(seq iter.Seq[HotelSummary]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
