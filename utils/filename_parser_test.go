package utils

import "testing"

func TestParseImageFileName(t *testing.T) {
	tests := []struct {
		filename string
		fabric   string
		category string
		style    string
		shot     string
	}{
		{"AK-RTW-0042-F.png", "AK", "RTW", "0042", "F"},
		{"AD-ACC-0007-D.jpg", "AD", "ACC", "0007", "D"},
		{"ak-rtw-0042-b.jpeg", "AK", "RTW", "0042", "B"},
		{"LC-BSP-1200-F.PNG", "LC", "BSP", "1200", "F"},
	}

	for _, tt := range tests {
		parsed, err := ParseImageFileName(tt.filename)
		if err != nil {
			t.Errorf("ParseImageFileName(%q) returned error: %v", tt.filename, err)
			continue
		}
		if parsed.FabricCode != tt.fabric || parsed.CategoryCode != tt.category ||
			parsed.StyleNumber != tt.style || parsed.Shot != tt.shot {
			t.Errorf("ParseImageFileName(%q) = %+v", tt.filename, parsed)
		}
	}
}

func TestParseImageFileName_Invalid(t *testing.T) {
	invalid := []string{
		"IMG_1234.png",
		"AK-RTW-42-F.png",   // style number not zero-padded to 4
		"AK-RTW-0042-X.png", // unknown shot code
		"AK-RTW-0042.png",   // missing shot
		"AK-RTW-0042-F.gif", // unsupported extension
	}

	for _, filename := range invalid {
		if _, err := ParseImageFileName(filename); err == nil {
			t.Errorf("ParseImageFileName(%q) expected an error", filename)
		}
	}
}

func TestStyleCode(t *testing.T) {
	parsed, err := ParseImageFileName("AK-RTW-0042-F.png")
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.StyleCode(); got != "AK-RTW-0042" {
		t.Errorf("StyleCode() = %q, expected AK-RTW-0042", got)
	}
}
