package models

// AsoEbiGuest represents one guest entry in an aso-ebi group request
type AsoEbiGuest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Size  string `json:"size,omitempty"`
}

// AsoEbiRequest represents a group fabric coordination request composed by
// the aso-ebi wizard
type AsoEbiRequest struct {
	ID               string        `json:"id"`
	Status           string        `json:"status"` // received, quoted, confirmed, canceled
	EventType        string        `json:"eventType"` // wedding, burial, birthday, naming
	EventDate        string        `json:"eventDate"`
	FabricID         string        `json:"fabricId"`
	FabricName       string        `json:"fabricName,omitempty"`
	Guests           []AsoEbiGuest `json:"guests"`
	QuotedTotal      int64         `json:"quotedTotal,omitempty"` // group quote from the pricing engine
	CoordinatorName  string        `json:"coordinatorName"`
	CoordinatorPhone string        `json:"coordinatorPhone"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        string        `json:"createdAt"`
}

// AsoEbiListResponse represents the response for the admin aso-ebi request list
type AsoEbiListResponse struct {
	Requests []AsoEbiRequest `json:"requests"`
}
