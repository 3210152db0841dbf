//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type HotelFixture struct {
	Name          string
	StarRating    int
	ReviewRating  string
	HasWifi       bool
	HasPool       bool
	TaxPercentage *string
	Featured      bool
}

type RoomTypeFixture struct {
	Name       string
	BasePrice  string
	TotalRooms int
	Available  bool
}

func CreateTestCity(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO cities (name) VALUES ($1)
		 ON CONFLICT ((lower(name))) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestHotel(t *testing.T, db DBLike, cityID int64, h HotelFixture) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO hotels (city_id, name, star_rating, review_rating, has_wifi, has_pool, gst_percentage, is_featured)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7::numeric, $8)
		 RETURNING id`,
		cityID, h.Name, h.StarRating, h.ReviewRating, h.HasWifi, h.HasPool, h.TaxPercentage, h.Featured).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID int64, rt RoomTypeFixture) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO room_types (hotel_id, name, base_price, total_rooms, is_available)
		 VALUES ($1, $2, $3::numeric, $4, $5)
		 RETURNING id`,
		hotelID, rt.Name, rt.BasePrice, rt.TotalRooms, rt.Available).Scan(&id)
	require.NoError(t, err)
	return id
}

// dates are YYYY-MM-DD
func CreateTestRateOverride(t *testing.T, db DBLike, roomTypeID int64, date, price string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO rate_overrides (room_type_id, date, price) VALUES ($1, $2::date, $3::numeric)`,
		roomTypeID, date, price)
	require.NoError(t, err)
}

func CreateTestInventory(t *testing.T, db DBLike, roomTypeID int64, date string, total, booked int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO room_inventory (room_type_id, date, total_rooms, booked_rooms) VALUES ($1, $2::date, $3, $4)`,
		roomTypeID, date, total, booked)
	require.NoError(t, err)
}

func CreateTestDiscount(t *testing.T, db DBLike, hotelID int64, code, kind, value string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO hotel_discounts (hotel_id, code, discount_type, discount_value) VALUES ($1, $2, $3, $4::numeric)`,
		hotelID, code, kind, value)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cities (name, state) VALUES
		    ('Goa', 'Goa'),
		    ('Mumbai', 'Maharashtra')
		ON CONFLICT ((lower(name))) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
