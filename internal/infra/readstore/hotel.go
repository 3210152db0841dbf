package readstore

import (
	"context"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"
)

type HotelQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetHotelByIDRow, error)
	ListHotelSummaries(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListHotelSummariesRow, error)
	ListRoomTypesByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) ([]sqlc.RoomTypes, error)
}

type HotelReadStore struct {
	queries HotelQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the hotel with its room types. Discounts are left to the
// discount store.
func (r *HotelReadStore) FindByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel by id", err)
	}

	rooms, err := r.ListRoomTypes(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := pgconv.DecimalFromNumeric(row.ReviewRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel review rating", err, infra.KindInconsistentDB)
	}
	tax, err := pgconv.DecimalPtrFromNumeric(row.GstPercentage)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel gst percentage", err, infra.KindInconsistentDB)
	}
	lat, err := pgconv.DecimalPtrFromNumeric(row.Latitude)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel latitude", err, infra.KindInconsistentDB)
	}
	lng, err := pgconv.DecimalPtrFromNumeric(row.Longitude)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel longitude", err, infra.KindInconsistentDB)
	}

	h := &hotel.Hotel{
		HotelSummary: catalog.HotelSummary{
			ID:           row.ID,
			Name:         row.Name,
			CityID:       row.CityID,
			CityName:     row.CityName,
			StarRating:   int(row.StarRating),
			ReviewRating: rating,
			ReviewCount:  int(row.ReviewCount),
			Amenities:    amenitySet(row.HasWifi, row.HasParking, row.HasPool, row.HasGym, row.HasRestaurant, row.HasSpa),
			MinPrice:     hotel.MinBasePrice(rooms),
			ImageURL:     row.ImageUrl,
			Featured:     row.IsFeatured,
			Address:      row.Address,
			Latitude:     lat,
			Longitude:    lng,
		},
		Description:   row.Description,
		CheckInTime:   row.CheckinTime,
		CheckOutTime:  row.CheckoutTime,
		TaxPercentage: tax,
		RoomTypes:     rooms,
	}
	return h, nil
}

func (r *HotelReadStore) ListRoomTypes(ctx context.Context, hotelID int64) ([]hotel.RoomType, error) {
	rows, err := r.queries.ListRoomTypesByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	rooms := make([]hotel.RoomType, 0, len(rows))
	for _, row := range rows {
		rt, err := toRoomType(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room type row", err, infra.KindInconsistentDB)
		}
		rooms = append(rooms, rt)
	}
	return rooms, nil
}

// ListSummaries returns active hotels in id order.
func (r *HotelReadStore) ListSummaries(ctx context.Context) ([]catalog.HotelSummary, error) {
	rows, err := r.queries.ListHotelSummaries(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel summaries", err)
	}

	out := make([]catalog.HotelSummary, 0, len(rows))
	for _, row := range rows {
		rating, err := pgconv.DecimalFromNumeric(row.ReviewRating)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid hotel review rating", err, infra.KindInconsistentDB)
		}
		price, err := moneyFromNumeric(row.MinPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid hotel min price", err, infra.KindInconsistentDB)
		}
		lat, err := pgconv.DecimalPtrFromNumeric(row.Latitude)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid hotel latitude", err, infra.KindInconsistentDB)
		}
		lng, err := pgconv.DecimalPtrFromNumeric(row.Longitude)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid hotel longitude", err, infra.KindInconsistentDB)
		}
		out = append(out, catalog.HotelSummary{
			ID:           row.ID,
			Name:         row.Name,
			CityID:       row.CityID,
			CityName:     row.CityName,
			StarRating:   int(row.StarRating),
			ReviewRating: rating,
			ReviewCount:  int(row.ReviewCount),
			Amenities:    amenitySet(row.HasWifi, row.HasParking, row.HasPool, row.HasGym, row.HasRestaurant, row.HasSpa),
			MinPrice:     price,
			ImageURL:     row.ImageUrl,
			Featured:     row.IsFeatured,
			Address:      row.Address,
			Latitude:     lat,
			Longitude:    lng,
		})
	}
	return out, nil
}
