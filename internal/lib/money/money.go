// Package money содержит вспомогательные функции для работы с денежными
// значениями в отчётах.
package money

import "math"

// Round2 округляет значение до двух знаков после запятой.
// Половина округляется от нуля (math.Round).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
