package utils

import "testing"

func TestFormatNGN(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{999, "₦999"},
		{1000, "₦1,000"},
		{9500, "₦9,500"},
		{999999, "₦999,999"},
		{45000, "₦45,000"},
		{102000, "₦102,000"},
		{1250000, "₦1,250,000"},
		{1000000000, "₦1,000,000,000"},
		{-12000, "-₦12,000"},
		{-500, "-₦500"},
	}

	for _, tt := range tests {
		if got := FormatNGN(tt.amount); got != tt.expected {
			t.Errorf("FormatNGN(%d) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}
