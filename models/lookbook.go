package models

// LookbookItem represents a single product slot in a generated lookbook page
type LookbookItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Fabric      string `json:"fabric"`
	PriceLabel  string `json:"priceLabel"` // formatted NGN price, e.g. "₦45,000"
	ImageURL    string `json:"imageUrl"`
	ImageBase64 string `json:"imageBase64"` // inlined for PDF/PNG capture
}

// LookbookData represents the data passed to the lookbook HTML template
type LookbookData struct {
	Title     string         `json:"title"`
	Season    string         `json:"season"`
	Items     []LookbookItem `json:"items"`
	PageCount int            `json:"pageCount"`
}
