package money

import "math"

// ToMinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounding half away from zero. NaN and infinities yield 0.
func ToMinorUnits(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return int64(math.Round(amount * 100))
}
