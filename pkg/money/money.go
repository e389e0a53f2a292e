// Package money rounds monetary values to their storage precision: cash is
// kept at 2 decimal places, crypto at 4.
package money

import "github.com/shopspring/decimal"

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Round2 rounds a cash amount half-up to 2 decimal places.
func Round2(v float64) float64 {
	return round(v, 2)
}

// Round4 rounds a crypto amount half-up to 4 decimal places.
func Round4(v float64) float64 {
	return round(v, 4)
}

// Mul returns amount*price rounded to cash precision.
func Mul(amount float64, price int) float64 {
	f, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(int64(price))).Round(2).Float64()
	return f
}

// Percent returns pct percent of v rounded to cash precision.
func Percent(v float64, pct float64) float64 {
	f, _ := decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)).Round(2).Float64()
	return f
}
