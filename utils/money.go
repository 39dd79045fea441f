package utils

import (
	"strconv"
	"strings"
)

// FormatNGN formats a naira amount as a display string like "₦45,000".
// Catalogue prices are whole naira; kobo never appear on the storefront,
// so the amount carries no fractional part.
func FormatNGN(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	groups := make([]string, 0, len(digits)/3+1)
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "₦" + strings.Join(groups, ",")
}
