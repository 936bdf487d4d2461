package utils

import "github.com/shopspring/decimal"

// RoundMoney rounds to 2 decimal places, half away from zero.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Average returns round(total/count, 2), or 0 when count is not positive.
func Average(total float64, count int64) float64 {
	if count <= 0 {
		return 0
	}
	return decimal.NewFromFloat(total).
		Div(decimal.NewFromInt(count)).
		Round(2).
		InexactFloat64()
}
