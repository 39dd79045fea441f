package models

// Booking represents a fitting or consultation appointment in the database
type Booking struct {
	ID            string `json:"id"`
	Status        string `json:"status"` // requested, confirmed, completed, canceled
	Service       string `json:"service"` // fitting, consultation, measurement
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// BookingListResponse represents the response for the admin booking list
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

// UpdateBookingStatusRequest represents the request body for an admin status change
// Example: {"status": "confirmed"}
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
