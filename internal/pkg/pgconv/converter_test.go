//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"hotel-quote-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("scaled value", func(t *testing.T) {
		d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(123456), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "1234.56", d.String())
	})

	t.Run("round trip", func(t *testing.T) {
		in := decimal.RequireFromString("999.99")
		out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
	})

	testCases := []struct {
		name string
		in   pgtype.Numeric
	}{
		{name: "null", in: pgtype.Numeric{}},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}},
		{name: "infinity", in: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pgconv.DecimalFromNumeric(tc.in)
			require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
		})
	}
}

func TestDecimalPtrFromNumeric(t *testing.T) {
	d, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDateFromPgtype(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	got, err := pgconv.DateFromPgtype(pgtype.Date{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, ist), Valid: true})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = pgconv.DateFromPgtype(pgtype.Date{})
	require.ErrorIs(t, err, pgconv.ErrInvalidDateValue)

	p, err := pgconv.DatePtrFromPgtype(pgtype.Date{})
	require.NoError(t, err)
	assert.Nil(t, p)
}
