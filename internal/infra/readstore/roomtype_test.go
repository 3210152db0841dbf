//go:build unit

package readstore

import (
	"context"
	"testing"

	"hotel-quote-engine/internal/infra"
	sqlc "hotel-quote-engine/internal/infra/sqlc/generated"
	"hotel-quote-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomTypeQueries struct {
	mock.Mock
}

func (m *MockRoomTypeQueries) GetRoomTypeForQuote(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetRoomTypeForQuoteRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRoomTypeForQuoteRow), args.Error(1)
}

func numeric(s string) pgtype.Numeric {
	return pgconv.DecimalToNumeric(decimal.RequireFromString(s))
}

func TestFindForQuote(t *testing.T) {
	row := sqlc.GetRoomTypeForQuoteRow{
		ID:            7,
		HotelID:       3,
		Name:          "Deluxe",
		BasePrice:     numeric("2000.00"),
		TotalRooms:    10,
		IsAvailable:   true,
		GstPercentage: numeric("18.00"),
	}
	noTax := row
	noTax.GstPercentage = pgtype.Numeric{}
	badPrice := row
	badPrice.BasePrice = pgtype.Numeric{}

	tests := []struct {
		name      string
		mockRow   sqlc.GetRoomTypeForQuoteRow
		mockError error
		wantTax   string
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success - hotel tax", mockRow: row, wantTax: "18"},
		{name: "success - no hotel tax", mockRow: noTax},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "null base price", mockRow: badPrice, wantKind: infra.KindInconsistentDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRoomTypeQueries)
			mockQueries.On("GetRoomTypeForQuote", mock.Anything, mock.Anything, int64(7)).Return(tt.mockRow, tt.mockError)

			store := NewRoomTypeReadStore(mockQueries, nil)
			rt, err := store.FindForQuote(context.Background(), 7)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, rt)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(3), rt.HotelID)
				assert.Equal(t, "2000", rt.BasePrice.String())
				assert.Equal(t, 10, rt.TotalRooms)
				if tt.wantTax == "" {
					assert.Nil(t, rt.TaxPercentage)
				} else {
					require.NotNil(t, rt.TaxPercentage)
					assert.Equal(t, tt.wantTax, rt.TaxPercentage.String())
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
