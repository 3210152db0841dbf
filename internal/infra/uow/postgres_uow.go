package uow

import (
	"context"
	"errors"
	"log/slog"

	"hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/domain/hotel"
	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/infra/readstore"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/errs"
	"hotel-quote-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Read-only transaction for consistent multi-table snapshots. The connection
// goes back to the pool on every path, including panics in fn.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgReads(u.q, pgxTx)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return fn(ctx, newPgReads(u.q, u.pool))
}

type pgReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	roomTypeStore  *readstore.RoomTypeReadStore
	rateStore      *readstore.RateReadStore
	inventoryStore *readstore.InventoryReadStore
	discountStore  *readstore.DiscountReadStore
	hotelStore     *readstore.HotelReadStore
}

func newPgReads(q *sqlc.Queries, dbtx sqlc.DBTX) *pgReads {
	return &pgReads{q: q, dbtx: dbtx}
}

func (r *pgReads) roomTypes() *readstore.RoomTypeReadStore {
	if r.roomTypeStore == nil {
		r.roomTypeStore = readstore.NewRoomTypeReadStore(r.q, r.dbtx)
	}
	return r.roomTypeStore
}

func (r *pgReads) rates() *readstore.RateReadStore {
	if r.rateStore == nil {
		r.rateStore = readstore.NewRateReadStore(r.q, r.dbtx)
	}
	return r.rateStore
}

func (r *pgReads) inventory() *readstore.InventoryReadStore {
	if r.inventoryStore == nil {
		r.inventoryStore = readstore.NewInventoryReadStore(r.q, r.dbtx)
	}
	return r.inventoryStore
}

func (r *pgReads) discounts() *readstore.DiscountReadStore {
	if r.discountStore == nil {
		r.discountStore = readstore.NewDiscountReadStore(r.q, r.dbtx)
	}
	return r.discountStore
}

func (r *pgReads) hotels() *readstore.HotelReadStore {
	if r.hotelStore == nil {
		r.hotelStore = readstore.NewHotelReadStore(r.q, r.dbtx)
	}
	return r.hotelStore
}

func (r *pgReads) RoomTypeForQuote(ctx context.Context, id int64) (*shared.RoomTypeSnapshot, error) {
	return r.roomTypes().FindForQuote(ctx, id)
}

func (r *pgReads) RateOverrides(ctx context.Context, roomTypeID int64, sr stay.DateRange) ([]pricing.RateOverride, error) {
	return r.rates().ListOverrides(ctx, roomTypeID, sr)
}

func (r *pgReads) InventoryRecords(ctx context.Context, roomTypeID int64, sr stay.DateRange) ([]inventory.Record, error) {
	return r.inventory().ListByRoomType(ctx, roomTypeID, sr)
}

func (r *pgReads) PromoByCode(ctx context.Context, hotelID int64, code string) (*pricing.PromoCode, error) {
	return r.discounts().FindByCode(ctx, hotelID, code)
}

func (r *pgReads) HotelByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	h, err := r.hotels().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	discounts, err := r.discounts().ListActiveByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Discounts = discounts
	return h, nil
}

func (r *pgReads) HotelInventory(ctx context.Context, hotelID int64, sr stay.DateRange) (map[int64][]inventory.Record, error) {
	return r.inventory().ListByHotel(ctx, hotelID, sr)
}

func (r *pgReads) HotelSummaries(ctx context.Context) ([]catalog.HotelSummary, error) {
	return r.hotels().ListSummaries(ctx)
}
