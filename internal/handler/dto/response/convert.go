package response

import (
	"rental-marketplace/internal/domain/money"

	"github.com/jinzhu/copier"
)

// moneyToRials lets copier flatten money.Money into the float OMR amounts clients read
var moneyToRials = copier.TypeConverter{
	SrcType: money.Money{},
	DstType: copier.Float64,
	Fn: func(src any) (any, error) {
		m, _ := src.(money.Money)
		return m.Rials(), nil
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{
		IgnoreEmpty: true,
		Converters:  []copier.TypeConverter{moneyToRials},
	})
}
