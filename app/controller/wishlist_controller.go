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
	"adire-boutique/store"
)

// WishlistController handles HTTP requests for the shopper's wishlist.
// The wishlist is a set keyed by product id; re-adding a saved product is a
// no-op that only surfaces an "already saved" toast.
type WishlistController struct {
	kv          store.KVStore
	productRepo repository.ProductRepositoryInterface
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(kv store.KVStore, productRepo repository.ProductRepositoryInterface) *WishlistController {
	return &WishlistController{
		kv:          kv,
		productRepo: productRepo,
	}
}

func (c *WishlistController) loadWishlist(ctx context.Context, session string) (*store.Wishlist, *store.CollectNotifier) {
	notifier := &store.CollectNotifier{}
	return store.NewWishlist(ctx, c.kv, notifier, "wishlist:"+session), notifier
}

func writeWishlist(w http.ResponseWriter, wishlist *store.Wishlist, notifier *store.CollectNotifier) {
	response := models.WishlistResponse{
		Items:          wishlist.Items(),
		TotalItemCount: wishlist.TotalItemCount(),
		Notifications:  notifier.Events,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Wishlist: Error encoding response: %v", err)
	}
}

// GetWishlist handles GET /wishlist
func (c *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	wishlist, notifier := c.loadWishlist(ctx, session)
	writeWishlist(w, wishlist, notifier)
}

// fetchProduct loads and validates the product referenced by an add/toggle request
func (c *WishlistController) fetchProduct(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if strings.TrimSpace(req.ProductID) == "" {
		http.Error(w, "productId cannot be empty", http.StatusBadRequest)
		return nil, false
	}

	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		log.Printf("❌ Wishlist: Error fetching product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Product not found: %s", req.ProductID), http.StatusNotFound)
			return nil, false
		}
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return product, true
}

// AddToWishlist handles POST /wishlist/items
func (c *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddToWishlist: Received %s request to %s", r.Method, r.URL.Path)

	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	product, ok := c.fetchProduct(ctx, w, r)
	if !ok {
		return
	}

	wishlist, notifier := c.loadWishlist(ctx, session)
	wishlist.AddItem(ctx, *product)

	log.Printf("✅ AddToWishlist: session=%s product=%s saved=%d", session, product.ID, wishlist.TotalItemCount())
	writeWishlist(w, wishlist, notifier)
}

// ToggleWishlist handles POST /wishlist/toggle
// Saves the product if absent, removes it if already saved
func (c *WishlistController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	product, ok := c.fetchProduct(ctx, w, r)
	if !ok {
		return
	}

	wishlist, notifier := c.loadWishlist(ctx, session)
	wishlist.Toggle(ctx, *product)

	log.Printf("✅ ToggleWishlist: session=%s product=%s saved=%d", session, product.ID, wishlist.TotalItemCount())
	writeWishlist(w, wishlist, notifier)
}

// RemoveFromWishlist handles DELETE /wishlist/items/{productID}
func (c *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		http.Error(w, "X-Session-ID header is required", http.StatusBadRequest)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/wishlist/items/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	wishlist, notifier := c.loadWishlist(ctx, session)
	wishlist.RemoveItem(ctx, productID)

	log.Printf("✅ RemoveFromWishlist: session=%s product=%s", session, productID)
	writeWishlist(w, wishlist, notifier)
}
