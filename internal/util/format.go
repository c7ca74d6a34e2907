package util

import (
	"strconv"
	"strings"
)

// FormatThousands renders v with the given number of decimals and commas
// between thousands groups: 12345.678 with 2 decimals is "12,345.68".
func FormatThousands(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	// "-0" after rounding is just "0"
	if sign != "" && strings.Trim(intPart+fracPart, "0.") == "" {
		sign = ""
	}

	return sign + groupThousands(intPart) + fracPart
}

// FormatInteger renders v rounded to a whole number with thousands commas.
func FormatInteger(v float64) string {
	return FormatThousands(v, 0)
}

// FormatCount renders a count with thousands commas.
func FormatCount(n int) string {
	return FormatThousands(float64(n), 0)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i, digit := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digit)
	}
	return b.String()
}
