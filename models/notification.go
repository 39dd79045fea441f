package models

// Notification represents a shopper-facing toast message emitted while
// handling a cart or wishlist mutation
// Example: {"kind": "success", "text": "Added Ankara Wrap Dress to cart"}
type Notification struct {
	Kind string `json:"kind"` // success, error, info
	Text string `json:"text"`
}
