package listing

import (
	"math"
	"math/bits"

	"rental-marketplace/internal/domain/money"
)

// Commission is the marketplace markup applied on top of the vendor-net rate.
// The public rate is fixed when the listing is priced, never at booking time.
type Commission struct {
	basisPoints int64
}

func NewCommission(percent float64) (Commission, error) {
	if percent < 0 || percent > 100 || math.IsNaN(percent) {
		return Commission{}, ErrInvalidCommission
	}
	return Commission{basisPoints: int64(math.Round(percent * 100))}, nil
}

func (c Commission) Percent() float64 {
	return float64(c.basisPoints) / 100
}

// MaxVendorRials is the highest daily rate a vendor may set
const MaxVendorRials = 1_000_000

var (
	MaxVendorRate = money.FromBaisa(MaxVendorRials * money.BaisaPerRial)

	maxMarketRate = money.FromBaisa(math.MaxInt64 / money.BaisaPerRial * money.BaisaPerRial)
)

// ValidateVendorRate accepts 0..MaxVendorRate
func ValidateVendorRate(rate money.Money) error {
	if rate.Baisa() < 0 || rate.Baisa() > MaxVendorRate.Baisa() {
		return ErrInvalidPrice
	}
	return nil
}

// MarketRate returns ceil(vendorRate × (1 + commission)) in whole rials.
// The product is taken in 128 bits; a result past int64 saturates.
func (c Commission) MarketRate(vendorRate money.Money) money.Money {
	if vendorRate.Baisa() <= 0 {
		return money.Zero
	}
	const scale = 10000
	den := uint64(scale * money.BaisaPerRial)

	hi, lo := bits.Mul64(uint64(vendorRate.Baisa()), uint64(scale+c.basisPoints))
	lo, carry := bits.Add64(lo, den-1, 0)
	hi += carry
	if hi >= den {
		return maxMarketRate
	}
	rials, _ := bits.Div64(hi, lo, den)
	if rials > math.MaxInt64/money.BaisaPerRial {
		return maxMarketRate
	}
	return money.FromBaisa(int64(rials) * money.BaisaPerRial) // #nosec G115 -- bounded above
}

// Margin is the marketplace share of one rental day
func Margin(market, base money.Money) money.Money {
	if base.Baisa() <= 0 || base.Baisa() > market.Baisa() {
		return money.Zero
	}
	return market.Sub(base)
}
