package models

// QuoteLine represents the priced portion of a group quote at one tier
type QuoteLine struct {
	Tier      string `json:"tier"` // "retail" or "asoebi"
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// QuoteBreakdown represents a complete aso-ebi group quote
type QuoteBreakdown struct {
	Category     string      `json:"category"`
	Qty          int         `json:"qty"`
	Total        int64       `json:"total"`
	Lines        []QuoteLine `json:"lines"`
	AppliedRules []string    `json:"appliedRules"` // IDs of discount rules applied
}
