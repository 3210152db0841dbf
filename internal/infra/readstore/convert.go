package readstore

import (
	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func dateRangeParams(r stay.DateRange) (pgtype.Date, pgtype.Date) {
	return pgconv.DateToPgtype(r.CheckIn().Time()), pgconv.DateToPgtype(r.CheckOut().Time())
}

func moneyFromNumeric(n pgtype.Numeric) (pricing.Money, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return pricing.Money{}, err
	}
	return pricing.NewMoney(d), nil
}

func moneyPtrFromNumeric(n pgtype.Numeric) (*pricing.Money, error) {
	d, err := pgconv.DecimalPtrFromNumeric(n)
	if err != nil || d == nil {
		return nil, err
	}
	m := pricing.NewMoney(*d)
	return &m, nil
}

func datePtrFromPgtype(d pgtype.Date) (*stay.Date, error) {
	t, err := pgconv.DatePtrFromPgtype(d)
	if err != nil || t == nil {
		return nil, err
	}
	sd := stay.DateOf(*t)
	return &sd, nil
}

func toPromoCode(row sqlc.HotelDiscounts) (*pricing.PromoCode, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	minAmount, err := moneyFromNumeric(row.MinBookingAmount)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := moneyPtrFromNumeric(row.MaxDiscount)
	if err != nil {
		return nil, err
	}
	from, err := datePtrFromPgtype(row.ValidFrom)
	if err != nil {
		return nil, err
	}
	till, err := datePtrFromPgtype(row.ValidTill)
	if err != nil {
		return nil, err
	}
	return &pricing.PromoCode{
		ID:               row.ID,
		HotelID:          row.HotelID,
		Code:             row.Code,
		Kind:             pricing.DiscountKind(row.DiscountType),
		Value:            value,
		Description:      row.Description,
		MinBookingAmount: minAmount,
		MaxDiscount:      maxDiscount,
		ValidFrom:        from,
		ValidTill:        till,
		Active:           row.IsActive,
	}, nil
}

func toRoomType(row sqlc.RoomTypes) (hotel.RoomType, error) {
	base, err := moneyFromNumeric(row.BasePrice)
	if err != nil {
		return hotel.RoomType{}, err
	}
	return hotel.RoomType{
		ID:           row.ID,
		HotelID:      row.HotelID,
		Name:         row.Name,
		Description:  row.Description,
		BasePrice:    base,
		MaxOccupancy: int(row.MaxOccupancy),
		TotalRooms:   int(row.TotalRooms),
		Available:    row.IsAvailable,
	}, nil
}

func toInventoryRecord(row sqlc.RoomInventory) (inventory.Record, error) {
	t, err := pgconv.DateFromPgtype(row.Date)
	if err != nil {
		return inventory.Record{}, err
	}
	return inventory.Record{
		Date:        stay.DateOf(t),
		TotalRooms:  int(row.TotalRooms),
		BookedRooms: int(row.BookedRooms),
	}, nil
}

func amenitySet(wifi, parking, pool, gym, restaurant, spa bool) catalog.AmenitySet {
	var s catalog.AmenitySet
	flags := []struct {
		on bool
		a  catalog.Amenity
	}{
		{wifi, catalog.AmenityWifi},
		{parking, catalog.AmenityParking},
		{pool, catalog.AmenityPool},
		{gym, catalog.AmenityGym},
		{restaurant, catalog.AmenityRestaurant},
		{spa, catalog.AmenitySpa},
	}
	for _, f := range flags {
		if f.on {
			s = s.With(f.a)
		}
	}
	return s
}
