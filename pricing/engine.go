package pricing

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"adire-boutique/models"
)

// PricingConfig represents the pricing configuration structure
type PricingConfig struct {
	Currency  string                `json:"currency"`
	Pricebook map[string]PriceEntry `json:"pricebook"` // keyed by product category
	Rules     []Rule                `json:"rules"`
}

// PriceEntry holds the per-unit prices for one category
type PriceEntry struct {
	Retail int64 `json:"retail"`
	AsoEbi int64 `json:"asoebi"` // group tier, applies from the aso-ebi threshold up
}

// Rule adjusts a group quote. Supported types:
//   - "asoebi_tier": switch the whole group to the aso-ebi unit price when
//     qty >= conditions.minQty
//   - "group_discount": take action.percentOff off the total when
//     qty >= conditions.minQty
type Rule struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Active     bool           `json:"active"`
	Priority   int            `json:"priority"`
	Type       string         `json:"type"`
	Conditions map[string]any `json:"conditions"`
	Action     map[string]any `json:"action,omitempty"`
}

// Engine quotes aso-ebi group orders from a JSON pricebook
type Engine struct {
	config *PricingConfig
}

var engineInstance *Engine

// NewEngine creates the pricing engine singleton from a JSON config file
func NewEngine(configPath string) (*Engine, error) {
	if engineInstance != nil {
		return engineInstance, nil
	}

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	var config PricingConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	// Sort rules by priority (highest first)
	sort.Slice(config.Rules, func(i, j int) bool {
		return config.Rules[i].Priority > config.Rules[j].Priority
	})

	engineInstance = &Engine{config: &config}
	log.Printf("✅ PricingEngine: Successfully loaded pricing config from %s", configPath)
	return engineInstance, nil
}

// NewEngineFromConfig builds an engine directly from a config, bypassing the
// singleton. Used by tests.
func NewEngineFromConfig(config *PricingConfig) (*Engine, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	sort.Slice(config.Rules, func(i, j int) bool {
		return config.Rules[i].Priority > config.Rules[j].Priority
	})
	return &Engine{config: config}, nil
}

func validateConfig(config *PricingConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if len(config.Pricebook) == 0 {
		return fmt.Errorf("pricebook is required")
	}
	for category, entry := range config.Pricebook {
		if entry.Retail <= 0 {
			return fmt.Errorf("pricebook[%s].retail must be positive", category)
		}
	}
	return nil
}

// GetEngine returns the singleton pricing engine instance
func GetEngine() *Engine {
	return engineInstance
}

// QuoteGroup quotes an aso-ebi group order: qty units of one category.
// The highest-priority matching asoebi_tier rule picks the unit price tier,
// then matching group_discount rules reduce the total.
func (e *Engine) QuoteGroup(category string, qty int) (*models.QuoteBreakdown, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("qty must be greater than 0")
	}

	entry, exists := e.config.Pricebook[category]
	if !exists {
		return nil, fmt.Errorf("no pricebook entry for category %q", category)
	}

	breakdown := &models.QuoteBreakdown{
		Category:     category,
		Qty:          qty,
		AppliedRules: []string{},
	}

	tier := "retail"
	unitPrice := entry.Retail
	for _, rule := range e.config.Rules {
		if !rule.Active || rule.Type != "asoebi_tier" {
			continue
		}
		if qty >= ruleMinQty(rule) && entry.AsoEbi > 0 {
			tier = "asoebi"
			unitPrice = entry.AsoEbi
			breakdown.AppliedRules = append(breakdown.AppliedRules, rule.ID)
			break
		}
	}

	total := unitPrice * int64(qty)
	breakdown.Lines = append(breakdown.Lines, models.QuoteLine{
		Tier:      tier,
		Qty:       qty,
		UnitPrice: unitPrice,
		LineTotal: total,
	})

	for _, rule := range e.config.Rules {
		if !rule.Active || rule.Type != "group_discount" {
			continue
		}
		if qty < ruleMinQty(rule) {
			continue
		}
		percentOff, ok := rule.Action["percentOff"].(float64)
		if !ok || percentOff <= 0 {
			continue
		}
		total -= total * int64(percentOff) / 100
		breakdown.AppliedRules = append(breakdown.AppliedRules, rule.ID)
		// Highest-priority discount wins, they do not stack
		break
	}

	breakdown.Total = total
	log.Printf("💰 QuoteGroup: category=%s qty=%d tier=%s total=%d", category, qty, tier, total)
	return breakdown, nil
}

func ruleMinQty(rule Rule) int {
	if minQty, ok := rule.Conditions["minQty"].(float64); ok {
		return int(minQty)
	}
	return 0
}
