package models

// CartLineItem represents one entry in a shopper's cart.
// Name, category, price and image are snapshotted at add-time and are not
// re-read from the catalogue afterwards.
type CartLineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Price    int64  `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// WishlistItem represents a product saved to a shopper's wishlist.
// The wishlist is a set keyed by product id, so there is no quantity.
type WishlistItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Price    int64  `json:"price"`
	Image    string `json:"image,omitempty"`
}

// AddToCartRequest represents the request body for adding a product to the cart or wishlist
// Example: {"productId": "p1"}
type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

// UpdateQuantityRequest represents the request body for changing a cart line quantity
// Example: {"quantity": 3}
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents the response for reading the cart
// Example response:
// {
//   "items": [{"id": "p1", "name": "Ankara Wrap Dress", "price": 45000, "quantity": 2}],
//   "totalItemCount": 2,
//   "totalPrice": 90000
// }
type CartResponse struct {
	Items          []CartLineItem `json:"items"`
	TotalItemCount int            `json:"totalItemCount"`
	TotalPrice     int64          `json:"totalPrice"`
	Notifications  []Notification `json:"notifications,omitempty"`
}

// WishlistResponse represents the response for reading the wishlist
type WishlistResponse struct {
	Items          []WishlistItem `json:"items"`
	TotalItemCount int            `json:"totalItemCount"`
	Notifications  []Notification `json:"notifications,omitempty"`
}
