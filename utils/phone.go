package utils

import (
	"fmt"
	"strings"
)

// NormalizePhone normalizes a Nigerian phone number to E.164 without the
// leading plus, as the WhatsApp API expects (e.g. "0801 234 5678" ->
// "2348012345678"). Numbers already carrying a country code pass through.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		// Local format: 080..., 070..., 090...
		return "234" + d[1:], nil
	case len(d) == 13 && strings.HasPrefix(d, "234"):
		return d, nil
	case len(d) >= 10 && len(d) <= 15:
		// Another country code; trust it as given
		return d, nil
	}

	return "", fmt.Errorf("invalid phone number: %q", phone)
}
