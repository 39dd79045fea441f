package utils

import (
	"strings"
)

// MapFabricToCode maps fabric names to their corresponding codes
// Input is normalized to lowercase before mapping
// Returns uppercase code
func MapFabricToCode(fabric string) string {
	fabricLower := strings.ToLower(strings.TrimSpace(fabric))

	fabricMap := map[string]string{
		"ankara":      "AK",
		"adire":       "AD",
		"aso-oke":     "AO",
		"lace":        "LC",
		"french lace": "FL",
		"cord lace":   "CL",
		"george":      "GE",
		"kente":       "KT",
		"chiffon":     "CH",
		"silk":        "SK",
		"velvet":      "VT",
		"brocade":     "BR",
		"atiku":       "AT",
		"senator":     "SN",
		"guinea":      "GN",
	}

	if code, exists := fabricMap[fabricLower]; exists {
		return code
	}

	// If not found, return uppercase version of input
	return strings.ToUpper(fabricLower)
}

// MapCodeToFabric maps fabric codes back to their readable names
// Input is normalized to uppercase before mapping
// Returns lowercase readable name
func MapCodeToFabric(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	codeToFabricMap := map[string]string{
		"AK": "ankara",
		"AD": "adire",
		"AO": "aso-oke",
		"LC": "lace",
		"FL": "french lace",
		"CL": "cord lace",
		"GE": "george",
		"KT": "kente",
		"CH": "chiffon",
		"SK": "silk",
		"VT": "velvet",
		"BR": "brocade",
		"AT": "atiku",
		"SN": "senator",
		"GN": "guinea",
	}

	if fabric, exists := codeToFabricMap[codeUpper]; exists {
		return fabric
	}

	return strings.ToLower(codeUpper)
}

// MapCategoryToCode maps product category names to their corresponding codes
// Input is normalized to lowercase before mapping
// Returns uppercase code
func MapCategoryToCode(category string) string {
	categoryLower := strings.ToLower(strings.TrimSpace(category))

	categoryMap := map[string]string{
		"ready-to-wear": "RTW",
		"asoebi-fabric": "ASO",
		"bespoke":       "BSP",
		"accessories":   "ACC",
		"headgear":      "GEL", // gele and fila
		"menswear":      "MEN",
		"kidswear":      "KID",
	}

	if code, exists := categoryMap[categoryLower]; exists {
		return code
	}

	return strings.ToUpper(categoryLower)
}

// MapCodeToCategory maps category codes back to their readable names
// Input is normalized to uppercase before mapping
// Returns lowercase readable name
func MapCodeToCategory(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	codeToCategoryMap := map[string]string{
		"RTW": "ready-to-wear",
		"ASO": "asoebi-fabric",
		"BSP": "bespoke",
		"ACC": "accessories",
		"GEL": "headgear",
		"MEN": "menswear",
		"KID": "kidswear",
	}

	if category, exists := codeToCategoryMap[codeUpper]; exists {
		return category
	}

	return strings.ToLower(codeUpper)
}
