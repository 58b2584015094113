package numutil

import (
	"fmt"
	"math"
	"strings"
)

// RobustDivide divides without faulting on a zero divisor; the undefined
// result is NaN rather than a panic or an infinity.
func RobustDivide(dividend, divisor float64) float64 {
	if divisor == 0 {
		return math.NaN()
	}
	return dividend / divisor
}

// Blunt rounds a number to at most maxDecimalPlaces decimal places, as a
// string, with trailing zeros and a trailing decimal point stripped.
// An exact zero renders as "0". NaN renders as "nan", or as the empty
// string when nanAsEmpty is set.
func Blunt(number float64, maxDecimalPlaces int, nanAsEmpty bool) string {
	if math.IsNaN(number) {
		if nanAsEmpty {
			return ""
		}
		return "nan"
	}

	if number == 0 {
		return "0"
	}

	s := fmt.Sprintf("%.*f", maxDecimalPlaces, number)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}
