package money

import (
	"errors"
	"fmt"
	"math"
)

// BaisaPerRial is the minor-unit factor for OMR (three decimal places)
const BaisaPerRial = 1000

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an OMR amount held in baisa
type Money struct {
	baisa int64
}

var (
	Zero = Money{}
	Max  = Money{baisa: math.MaxInt64}
	Min  = Money{baisa: math.MinInt64}
)

func FromBaisa(baisa int64) Money {
	return Money{baisa: baisa}
}

func NewNonNegative(baisa int64) (Money, error) {
	if baisa < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{baisa: baisa}, nil
}

// FromRials rounds to the nearest baisa, saturating outside the int64 range
func FromRials(rials float64) Money {
	b := math.Round(rials * BaisaPerRial)
	switch {
	case math.IsNaN(b):
		return Zero
	case b >= math.MaxInt64:
		return Max
	case b <= math.MinInt64:
		return Min
	}
	return Money{baisa: int64(b)}
}

func (m Money) Baisa() int64     { return m.baisa }
func (m Money) Rials() float64   { return float64(m.baisa) / BaisaPerRial }
func (m Money) IsZero() bool     { return m.baisa == 0 }
func (m Money) IsPositive() bool { return m.baisa > 0 }

func (m Money) Add(other Money) Money {
	return Money{baisa: m.baisa + other.baisa}
}

func (m Money) Sub(other Money) Money {
	return Money{baisa: m.baisa - other.baisa}
}

// Times saturates at Max or Min instead of wrapping
func (m Money) Times(n int) Money {
	k := int64(n)
	if m.baisa == 0 || k == 0 {
		return Zero
	}
	p := m.baisa * k
	if p/k != m.baisa || (k == -1 && m.baisa == math.MinInt64) {
		if (m.baisa < 0) != (k < 0) {
			return Min
		}
		return Max
	}
	return Money{baisa: p}
}

// CeilRials rounds up to a whole rial
func (m Money) CeilRials() Money {
	if m.baisa <= 0 {
		return Money{baisa: 0}
	}
	return Money{baisa: ((m.baisa + BaisaPerRial - 1) / BaisaPerRial) * BaisaPerRial}
}

func (m Money) String() string {
	sign := ""
	b := m.baisa
	if b < 0 {
		sign = "-"
		b = -b
	}
	return fmt.Sprintf("%s%d.%03d OMR", sign, b/BaisaPerRial, b%BaisaPerRial)
}
