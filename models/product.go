package models

// Product represents a catalogue product in the database
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"` // e.g. "ready-to-wear", "asoebi-fabric", "accessories"
	Fabric      string   `json:"fabric"`   // e.g. "ankara", "adire", "aso-oke", "lace"
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"` // unit price in NGN
	Sizes       []string `json:"sizes,omitempty"`
	Images      []string `json:"images,omitempty"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// CreateProductRequest represents the request body for creating a product
// Example: {"name": "Ankara Wrap Dress", "category": "ready-to-wear", "fabric": "ankara", "price": 45000, "sizes": ["S","M","L"]}
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Fabric      string   `json:"fabric"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Sizes       []string `json:"sizes,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// UpdateProductRequest represents the request body for updating a product.
// Nil pointers mean "leave the field unchanged".
type UpdateProductRequest struct {
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Fabric      *string   `json:"fabric,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// ProductFilter represents the query parameters accepted by the catalogue filter endpoint
type ProductFilter struct {
	Category   string
	Fabric     string
	MinPrice   int64
	MaxPrice   int64
	OnlyActive bool
	Search     string
}

// ProductListResponse represents the response for listing products
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
