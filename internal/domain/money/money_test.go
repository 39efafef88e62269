//go:build unit

package money_test

import (
	"math"
	"testing"

	"rental-marketplace/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(12_500), money.FromRials(12.5).Baisa())
	assert.Equal(t, "12.500 OMR", money.FromRials(12.5).String())
	assert.Equal(t, "-0.050 OMR", money.FromBaisa(-50).String())
	assert.Equal(t, int64(13_000), money.FromBaisa(12_001).CeilRials().Baisa())
	assert.Equal(t, int64(300), money.FromBaisa(100).Times(3).Baisa())

	_, err := money.NewNonNegative(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestMoneyOverflow(t *testing.T) {
	t.Run("success: times saturates instead of wrapping", func(t *testing.T) {
		big := money.FromBaisa(math.MaxInt64 / 2)
		assert.Equal(t, money.Max, big.Times(3))
		assert.Equal(t, money.Min, big.Times(-3))
		assert.Equal(t, money.Min, money.FromBaisa(-math.MaxInt64/2).Times(3))
		assert.Equal(t, money.Max, money.Min.Times(-1))
		assert.Equal(t, int64(math.MaxInt64-1), money.FromBaisa(math.MaxInt64/2).Times(2).Baisa())
	})

	t.Run("success: from rials saturates out of range", func(t *testing.T) {
		assert.Equal(t, money.Max, money.FromRials(1e30))
		assert.Equal(t, money.Min, money.FromRials(-1e30))
		assert.Equal(t, money.Zero, money.FromRials(math.NaN()))
		assert.Equal(t, int64(1_000_000_000_000_000), money.FromRials(1e12).Baisa())
	})
}
