package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTable(t *testing.T) {
	t.Run("USD base returns reference rates unchanged", func(t *testing.T) {
		table := DeriveTable("USD", "latest")
		assert.True(t, table.Rates["USD"].Equal(decimal.NewFromInt(1)))
		assert.True(t, table.Rates["BRL"].Equal(decimal.RequireFromString("5.20")))
	})

	t.Run("non-USD base divides by its reference rate", func(t *testing.T) {
		table := DeriveTable("BRL", "latest")
		// 1 BRL in BRL is exactly 1
		assert.True(t, table.Rates["BRL"].Equal(decimal.NewFromInt(1)))
		// USD rate under BRL base is 1 / 5.20
		expected := decimal.NewFromInt(1).DivRound(decimal.RequireFromString("5.20"), 6)
		assert.True(t, table.Rates["USD"].Equal(expected), "got %s", table.Rates["USD"])
	})

	t.Run("unknown base falls back to divisor 1", func(t *testing.T) {
		table := DeriveTable("XXX", "latest")
		assert.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	})

	t.Run("lowercase base is normalized", func(t *testing.T) {
		table := DeriveTable("usd", "latest")
		assert.Equal(t, "USD", table.Base)
	})
}

func TestRateTable_Convert(t *testing.T) {
	table := DeriveTable("USD", "latest")

	t.Run("converts amount by target rate", func(t *testing.T) {
		converted, rate, err := table.Convert(decimal.NewFromInt(100), "BRL")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("5.20")))
		assert.True(t, converted.Equal(decimal.RequireFromString("520.00")), "got %s", converted)
	})

	t.Run("fails with unsupported target", func(t *testing.T) {
		_, _, err := table.Convert(decimal.NewFromInt(100), "XYZ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})
}
