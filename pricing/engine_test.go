package pricing

import (
	"strings"
	"testing"
)

func testConfig() *PricingConfig {
	return &PricingConfig{
		Currency: "NGN",
		Pricebook: map[string]PriceEntry{
			"asoebi-fabric": {Retail: 12000, AsoEbi: 9500},
			"accessories":   {Retail: 8000, AsoEbi: 0},
		},
		Rules: []Rule{
			{
				ID:         "group-discount-50",
				Name:       "5% off groups of 50 or more",
				Active:     true,
				Priority:   90,
				Type:       "group_discount",
				Conditions: map[string]any{"minQty": float64(50)},
				Action:     map[string]any{"percentOff": float64(5)},
			},
			{
				ID:         "asoebi-tier-10",
				Name:       "Aso-ebi group tier from 10 guests",
				Active:     true,
				Priority:   100,
				Type:       "asoebi_tier",
				Conditions: map[string]any{"minQty": float64(10)},
			},
		},
	}
}

func TestQuoteGroup_RetailBelowTierThreshold(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	quote, err := engine.QuoteGroup("asoebi-fabric", 9)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Total != 9*12000 {
		t.Errorf("expected retail total 108000, got %d", quote.Total)
	}
	if len(quote.AppliedRules) != 0 {
		t.Errorf("expected no rules applied, got %v", quote.AppliedRules)
	}
	if quote.Lines[0].Tier != "retail" {
		t.Errorf("expected retail tier, got %q", quote.Lines[0].Tier)
	}
}

func TestQuoteGroup_TierSwitchesAtThreshold(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	quote, err := engine.QuoteGroup("asoebi-fabric", 10)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Total != 10*9500 {
		t.Errorf("expected aso-ebi total 95000, got %d", quote.Total)
	}
	if quote.Lines[0].Tier != "asoebi" || quote.Lines[0].UnitPrice != 9500 {
		t.Errorf("expected aso-ebi tier at 9500/unit, got %+v", quote.Lines[0])
	}
	if len(quote.AppliedRules) != 1 || quote.AppliedRules[0] != "asoebi-tier-10" {
		t.Errorf("expected the tier rule applied, got %v", quote.AppliedRules)
	}
}

func TestQuoteGroup_GroupDiscountStacksOnTier(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	quote, err := engine.QuoteGroup("asoebi-fabric", 50)
	if err != nil {
		t.Fatal(err)
	}

	// 50 * 9500 = 475000, minus 5% = 451250
	if quote.Total != 451250 {
		t.Errorf("expected discounted total 451250, got %d", quote.Total)
	}
	if len(quote.AppliedRules) != 2 {
		t.Errorf("expected tier and discount rules applied, got %v", quote.AppliedRules)
	}
}

func TestQuoteGroup_NoAsoEbiPriceStaysRetail(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	// accessories carry no aso-ebi price, so the tier rule never applies
	quote, err := engine.QuoteGroup("accessories", 20)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Lines[0].Tier != "retail" {
		t.Errorf("expected retail tier, got %q", quote.Lines[0].Tier)
	}
	if quote.Total != 20*8000 {
		t.Errorf("expected retail total 160000, got %d", quote.Total)
	}
}

func TestQuoteGroup_InactiveRulesIgnored(t *testing.T) {
	cfg := testConfig()
	for i := range cfg.Rules {
		cfg.Rules[i].Active = false
	}
	engine, err := NewEngineFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	quote, err := engine.QuoteGroup("asoebi-fabric", 50)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Total != 50*12000 {
		t.Errorf("expected undiscounted retail total 600000, got %d", quote.Total)
	}
	if len(quote.AppliedRules) != 0 {
		t.Errorf("expected no rules applied, got %v", quote.AppliedRules)
	}
}

func TestQuoteGroup_UnknownCategory(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := engine.QuoteGroup("no-such-category", 10); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestQuoteGroup_NonPositiveQty(t *testing.T) {
	engine, err := NewEngineFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := engine.QuoteGroup("asoebi-fabric", 0); err == nil {
		t.Error("expected an error for qty 0")
	}
	if _, err := engine.QuoteGroup("asoebi-fabric", -3); err == nil {
		t.Error("expected an error for negative qty")
	}
}

func TestNewEngineFromConfig_Validation(t *testing.T) {
	cfg := testConfig()
	cfg.Currency = ""
	if _, err := NewEngineFromConfig(cfg); err == nil || !strings.Contains(err.Error(), "currency") {
		t.Errorf("expected currency validation error, got %v", err)
	}

	cfg = testConfig()
	cfg.Pricebook = nil
	if _, err := NewEngineFromConfig(cfg); err == nil || !strings.Contains(err.Error(), "pricebook") {
		t.Errorf("expected pricebook validation error, got %v", err)
	}

	cfg = testConfig()
	cfg.Pricebook["asoebi-fabric"] = PriceEntry{Retail: 0, AsoEbi: 9500}
	if _, err := NewEngineFromConfig(cfg); err == nil || !strings.Contains(err.Error(), "retail must be positive") {
		t.Errorf("expected retail validation error, got %v", err)
	}
}
