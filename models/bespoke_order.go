package models

// BespokeOrder represents a bespoke tailoring request composed by the
// bespoke configurator wizard
type BespokeOrder struct {
	ID            string `json:"id"`
	Status        string `json:"status"` // received, in_review, quoted, accepted, declined
	Garment       string `json:"garment"` // e.g. "agbada", "wrap-dress", "two-piece"
	Fabric        string `json:"fabric"`
	Style         string `json:"style,omitempty"`
	Measurements  string `json:"measurements,omitempty"` // free-form, collected by the wizard
	Budget        int64  `json:"budget,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// BespokeOrderListResponse represents the response for the admin bespoke order list
type BespokeOrderListResponse struct {
	Orders []BespokeOrder `json:"orders"`
}
