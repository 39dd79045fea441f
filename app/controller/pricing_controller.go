package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"adire-boutique/pricing"
)

// PricingController handles HTTP requests for aso-ebi group quotes
type PricingController struct {
	engine *pricing.Engine
}

// NewPricingController creates a new PricingController
func NewPricingController(engine *pricing.Engine) *PricingController {
	return &PricingController{
		engine: engine,
	}
}

// QuoteGroup handles GET /asoebi/quote?category=asoebi-fabric&qty=25
// Lets a coordinator preview the group price before starting the wizard
func (c *PricingController) QuoteGroup(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "asoebi-fabric"
	}

	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil || qty <= 0 {
		http.Error(w, "qty must be a positive number", http.StatusBadRequest)
		return
	}

	breakdown, err := c.engine.QuoteGroup(category, qty)
	if err != nil {
		log.Printf("❌ QuoteGroup: %v", err)
		http.Error(w, fmt.Sprintf("Failed to quote group: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(breakdown); err != nil {
		log.Printf("❌ QuoteGroup: Error encoding response: %v", err)
	}
}
