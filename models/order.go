package models

// Order represents a checkout order in the database
type Order struct {
	ID               string `json:"id"`
	Status           string `json:"status"` // pending_payment, paid, fulfilled, canceled
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	DeliveryAddress  string `json:"deliveryAddress,omitempty"`
	Notes            string `json:"notes,omitempty"`
	PaymentReference string `json:"paymentReference"`
	Total            int64  `json:"total"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// OrderLine represents a line item in an order. Unit prices are frozen at
// checkout from the cart snapshot, not re-read from the catalogue.
type OrderLine struct {
	ID          int64  `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Qty         int    `json:"qty"`
}

// CheckoutRequest represents the request body for checking out the current cart
// Example: {"customerName": "Amaka Obi", "customerPhone": "+2348012345678", "deliveryAddress": "12 Adeola Odeku, VI, Lagos"}
type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// CheckoutResponse represents the response after a successful checkout
// Example response:
// {
//   "order": {"id": "...", "status": "pending_payment", "total": 90000, "paymentReference": "..."},
//   "lines": [{"productId": "p1", "productName": "Ankara Wrap Dress", "unitPrice": 45000, "qty": 2}]
// }
type CheckoutResponse struct {
	Order Order       `json:"order"`
	Lines []OrderLine `json:"lines"`
}

// OrderListResponse represents the response for the admin order list
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// OrderDetailResponse represents the response for a single order with its lines
type OrderDetailResponse struct {
	Order
	Lines []OrderLine `json:"lines"`
}

// UpdateOrderStatusRequest represents the request body for an admin status change
// Example: {"status": "paid"}
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
