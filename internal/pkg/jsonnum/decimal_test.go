//go:build unit

package jsonnum_test

import (
	"encoding/json"
	"testing"

	"hotel-quote-engine/internal/pkg/jsonnum"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "12", want: "12"},
		{in: "12.00", want: "12"},
		{in: "33.33", want: "33.33"},
		{in: "-4.5", want: "-4.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := json.Marshal(struct {
				V jsonnum.Decimal `json:"v"`
			}{V: jsonnum.New(decimal.RequireFromString(tt.in))})
			require.NoError(t, err)
			assert.JSONEq(t, `{"v":`+tt.want+`}`, string(b))
		})
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	for _, raw := range []string{`18.5`, `"18.5"`} {
		var n jsonnum.Decimal
		require.NoError(t, json.Unmarshal([]byte(raw), &n))
		assert.True(t, n.Equal(decimal.RequireFromString("18.5")), raw)
	}
}

func TestPtr(t *testing.T) {
	assert.Nil(t, jsonnum.Ptr(nil))

	d := decimal.RequireFromString("15.29")
	p := jsonnum.Ptr(&d)
	require.NotNil(t, p)
	assert.Equal(t, "15.29", p.String())
}
