package utils

import "github.com/shopspring/decimal"

// Round arredonda para a quantidade de casas decimais informada (meio para cima)
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

// Average divide a soma pela quantidade sem perder precisão na soma
func Average(sum decimal.Decimal, count int) float64 {
	if count == 0 {
		return 0
	}

	return sum.Div(decimal.NewFromInt(int64(count))).InexactFloat64()
}
