package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("parses from string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45")
		require.NoError(t, err)
		assert.Equal(t, "123.45", m.String())
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := NewMoneyFromString("12.3.4")
		assert.Error(t, err)
	})

	t.Run("arithmetic is exact", func(t *testing.T) {
		a, _ := NewMoneyFromString("0.10")
		b, _ := NewMoneyFromString("0.20")
		assert.Equal(t, "0.30", a.Add(b).String())
		assert.Equal(t, "-0.10", a.Sub(b).String())
	})

	t.Run("display uses rupee sign", func(t *testing.T) {
		m := NewMoney(decimal.NewFromInt(1000))
		assert.Equal(t, "₹1000.00", m.Display())
	})

	t.Run("comparisons", func(t *testing.T) {
		a := NewMoney(decimal.NewFromInt(5))
		b := NewMoney(decimal.NewFromInt(3))
		assert.True(t, a.GreaterThan(b))
		assert.True(t, a.Sub(a).Equal(Zero()))
		assert.True(t, b.Sub(a).IsNegative())
		assert.True(t, a.IsPositive())
	})
}
