package utils

import "testing"

func TestMapFabricToCode(t *testing.T) {
	tests := []struct {
		fabric   string
		expected string
	}{
		{"ankara", "AK"},
		{"Ankara", "AK"},
		{" adire ", "AD"},
		{"french lace", "FL"},
		{"linen", "LINEN"}, // unmapped fabrics pass through uppercased
	}

	for _, tt := range tests {
		if got := MapFabricToCode(tt.fabric); got != tt.expected {
			t.Errorf("MapFabricToCode(%q) = %q, expected %q", tt.fabric, got, tt.expected)
		}
	}
}

func TestMapCodeToFabric_RoundTrip(t *testing.T) {
	for _, fabric := range []string{"ankara", "adire", "aso-oke", "lace", "kente", "senator"} {
		if got := MapCodeToFabric(MapFabricToCode(fabric)); got != fabric {
			t.Errorf("round trip for %q produced %q", fabric, got)
		}
	}
}

func TestMapCategoryToCode(t *testing.T) {
	tests := []struct {
		category string
		expected string
	}{
		{"ready-to-wear", "RTW"},
		{"Asoebi-Fabric", "ASO"},
		{"bespoke", "BSP"},
		{"headgear", "GEL"},
		{"swimwear", "SWIMWEAR"}, // unmapped categories pass through uppercased
	}

	for _, tt := range tests {
		if got := MapCategoryToCode(tt.category); got != tt.expected {
			t.Errorf("MapCategoryToCode(%q) = %q, expected %q", tt.category, got, tt.expected)
		}
	}
}

func TestMapCodeToCategory_RoundTrip(t *testing.T) {
	for _, category := range []string{"ready-to-wear", "asoebi-fabric", "accessories", "menswear"} {
		if got := MapCodeToCategory(MapCategoryToCode(category)); got != category {
			t.Errorf("round trip for %q produced %q", category, got)
		}
	}
}
