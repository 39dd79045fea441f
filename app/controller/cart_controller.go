package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"adire-boutique/models"
	"adire-boutique/repository"
	"adire-boutique/service"
	"adire-boutique/store"
)

// CartController handles HTTP requests for the shopper's cart.
// Carts are keyed by the X-Session-ID header and hydrated from the KV store
// on every request, so a page reload (or a different device with the same
// session id) sees the same cart.
type CartController struct {
	kv          store.KVStore
	productRepo repository.ProductRepositoryInterface
	orderRepo   repository.OrderRepositoryInterface
	notify      *service.NotifyService
}

// NewCartController creates a new CartController
func NewCartController(
	kv store.KVStore,
	productRepo repository.ProductRepositoryInterface,
	orderRepo repository.OrderRepositoryInterface,
	notify *service.NotifyService,
) *CartController {
	return &CartController{
		kv:          kv,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		notify:      notify,
	}
}

// sessionID extracts the shopper session from the X-Session-ID header
func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Session-ID"))
}

func (c *CartController) loadCart(ctx context.Context, session string) (*store.Cart, *store.CollectNotifier) {
	notifier := &store.CollectNotifier{}
	return store.NewCart(ctx, c.kv, notifier, "cart:"+session), notifier
}

func writeCart(w http.ResponseWriter, cart *store.Cart, notifier *store.CollectNotifier) {
	response := models.CartResponse{
		Items:          cart.Items(),
		TotalItemCount: cart.TotalItemCount(),
		TotalPrice:     cart.TotalPrice(),
		Notifications:  notifier.Events,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Cart: Error encoding response: %v", err)
	}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	cart, notifier := c.loadCart(ctx, session)
	writeCart(w, cart, notifier)
}

// AddToCart handles POST /cart/items
// Adding a product already in the cart increments its quantity instead of
// creating a duplicate line
func (c *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddToCart: Received %s request to %s", r.Method, r.URL.Path)

	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddToCart: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		http.Error(w, "productId cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		log.Printf("❌ AddToCart: Error fetching product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Product not found: %s", req.ProductID), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}
	if !product.IsActive {
		http.Error(w, "Product is no longer available", http.StatusConflict)
		return
	}

	cart, notifier := c.loadCart(ctx, session)
	cart.AddItem(ctx, *product)

	log.Printf("✅ AddToCart: session=%s product=%s items=%d", session, product.ID, cart.TotalItemCount())
	writeCart(w, cart, notifier)
}

// UpdateCartQuantity handles PUT /cart/items/{productID}
// A quantity below 1 removes the line
func (c *CartController) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	cart, notifier := c.loadCart(ctx, session)
	cart.UpdateQuantity(ctx, productID, req.Quantity)

	log.Printf("✅ UpdateCartQuantity: session=%s product=%s quantity=%d", session, productID, req.Quantity)
	writeCart(w, cart, notifier)
}

// RemoveFromCart handles DELETE /cart/items/{productID}
func (c *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	cart, notifier := c.loadCart(ctx, session)
	cart.RemoveItem(ctx, productID)

	log.Printf("✅ RemoveFromCart: session=%s product=%s", session, productID)
	writeCart(w, cart, notifier)
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	cart, notifier := c.loadCart(ctx, session)
	cart.Clear(ctx)

	log.Printf("✅ ClearCart: session=%s", session)
	writeCart(w, cart, notifier)
}

// Checkout handles POST /cart/checkout
// Creates an order from the current cart with prices frozen from the cart
// snapshot, then clears the cart
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Checkout: Received %s request to %s", r.Method, r.URL.Path)

	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Checkout: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		http.Error(w, "customerName cannot be empty", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		http.Error(w, "customerPhone cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	cart, _ := c.loadCart(ctx, session)
	items := cart.Items()
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	response, err := c.orderRepo.CreateFromCart(ctx, &req, items)
	if err != nil {
		log.Printf("❌ Checkout: Error creating order: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create order: %v", err), http.StatusInternalServerError)
		return
	}

	cart.Clear(ctx)
	if c.notify != nil {
		c.notify.NotifyOrder(&response.Order, response.Lines)
	}

	log.Printf("✅ Checkout: session=%s order=%s total=%d", session, response.Order.ID, response.Order.Total)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Checkout: Error encoding response: %v", err)
	}
}
