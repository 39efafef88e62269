//go:build unit

package listing_test

import (
	"math"
	"testing"

	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionMarketRate(t *testing.T) {
	ten, err := listing.NewCommission(10)
	require.NoError(t, err)

	tests := []struct {
		name   string
		vendor money.Money
		want   int64
	}{
		{"50 becomes 55", money.FromRials(50), 55_000},
		{"rounds up to whole rial", money.FromRials(12), 14_000},
		{"exact result is not bumped", money.FromRials(100), 110_000},
		{"fractional vendor rate", money.FromBaisa(45_500), 51_000},
		{"zero stays zero", money.FromBaisa(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ten.MarketRate(tt.vendor).Baisa())
		})
	}

	t.Run("market rate never below vendor rate", func(t *testing.T) {
		for b := int64(1); b < 200_000; b += 997 {
			vendor := money.FromBaisa(b)
			assert.GreaterOrEqual(t, ten.MarketRate(vendor).Baisa(), vendor.Baisa())
		}
	})

	t.Run("huge vendor rate does not wrap negative", func(t *testing.T) {
		got := ten.MarketRate(money.FromRials(1e12))
		assert.Equal(t, int64(1_100_000_000_000_000), got.Baisa())

		full, err := listing.NewCommission(100)
		require.NoError(t, err)
		assert.Equal(t, money.FromBaisa(math.MaxInt64/money.BaisaPerRial*money.BaisaPerRial), full.MarketRate(money.Max))
	})

	t.Run("invalid commission", func(t *testing.T) {
		_, err := listing.NewCommission(-1)
		assert.ErrorIs(t, err, listing.ErrInvalidCommission)
		_, err = listing.NewCommission(150)
		assert.ErrorIs(t, err, listing.ErrInvalidCommission)
	})
}

func TestMargin(t *testing.T) {
	assert.Equal(t, int64(5_000), listing.Margin(money.FromRials(55), money.FromRials(50)).Baisa())
	assert.Zero(t, listing.Margin(money.FromRials(55), money.FromBaisa(0)).Baisa())
}

func TestValidateVendorRate(t *testing.T) {
	assert.NoError(t, listing.ValidateVendorRate(money.Zero))
	assert.NoError(t, listing.ValidateVendorRate(listing.MaxVendorRate))
	assert.ErrorIs(t, listing.ValidateVendorRate(listing.MaxVendorRate.Add(money.FromBaisa(1))), listing.ErrInvalidPrice)
	assert.ErrorIs(t, listing.ValidateVendorRate(money.FromBaisa(-1)), listing.ErrInvalidPrice)
}
