package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para duas casas
// decimais, como nos totais de comissão e venda dos resumos.
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
