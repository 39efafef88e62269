package reservation

import "rental-marketplace/internal/domain/money"

type PriceCalculator interface {
	Total(dailyRate money.Money, dates DateRange) money.Money
}

// DailyRateCalculator charges days × rate
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

func (DailyRateCalculator) Total(dailyRate money.Money, dates DateRange) money.Money {
	return dailyRate.Times(dates.Days())
}
