package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ParsedImageName holds the fields encoded in a product image filename
type ParsedImageName struct {
	FabricCode   string // e.g. "AK"
	CategoryCode string // e.g. "RTW"
	StyleNumber  string // zero-padded sequence, e.g. "0042"
	Shot         string // F (front), B (back), D (detail)
}

var (
	imageExtRegex  = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	imageNameRegex = regexp.MustCompile(`^([A-Z]+)-([A-Z]+)-(\d{4})-([FBD])$`)
)

// ParseImageFileName parses a product image filename following the pattern:
// FABRIC-CATEGORY-STYLENUMBER-SHOT.PNG
// Example: AK-RTW-0042-F.png (ankara, ready-to-wear, style 42, front shot)
func ParseImageFileName(filename string) (*ParsedImageName, error) {
	nameWithoutExt := imageExtRegex.ReplaceAllString(filename, "")

	matches := imageNameRegex.FindStringSubmatch(strings.ToUpper(nameWithoutExt))
	if len(matches) != 5 {
		return nil, fmt.Errorf("invalid filename format: expected FABRIC-CATEGORY-NNNN-SHOT, got %s", filename)
	}

	return &ParsedImageName{
		FabricCode:   matches[1],
		CategoryCode: matches[2],
		StyleNumber:  matches[3],
		Shot:         matches[4],
	}, nil
}

// StyleCode composes the full style code from a parsed image name
// Example: "AK-RTW-0042"
func (p *ParsedImageName) StyleCode() string {
	return fmt.Sprintf("%s-%s-%s", p.FabricCode, p.CategoryCode, p.StyleNumber)
}
