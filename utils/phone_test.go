package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"08012345678", "2348012345678"},
		{"0801 234 5678", "2348012345678"},
		{"0801-234-5678", "2348012345678"},
		{"2348012345678", "2348012345678"},
		{"+234 801 234 5678", "2348012345678"},
		{"+44 7911 123456", "447911123456"},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.input)
		if err != nil {
			t.Errorf("NormalizePhone(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("NormalizePhone(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	invalid := []string{"", "call me", "0801", "12345678901234567890"}

	for _, input := range invalid {
		if _, err := NormalizePhone(input); err == nil {
			t.Errorf("NormalizePhone(%q) expected an error", input)
		}
	}
}
