package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"adire-boutique/models"
)

// Wishlist maintains a shopper's saved products as a set keyed by product id.
// Persistence follows the same best-effort contract as Cart.
type Wishlist struct {
	kv       KVStore
	notifier Notifier
	key      string
	items    []models.WishlistItem
}

// NewWishlist creates a wishlist bound to the given KV slot and hydrates it.
// A missing slot or corrupt JSON yields an empty wishlist, never an error.
func NewWishlist(ctx context.Context, kv KVStore, notifier Notifier, key string) *Wishlist {
	w := &Wishlist{
		kv:       kv,
		notifier: notifier,
		key:      key,
	}

	raw, err := kv.Get(ctx, key)
	if err == nil {
		var items []models.WishlistItem
		if jsonErr := json.Unmarshal([]byte(raw), &items); jsonErr != nil {
			log.Printf("⚠️  Wishlist: corrupt data under %s, starting empty: %v", key, jsonErr)
		} else {
			w.items = items
		}
	} else if err != ErrKeyNotFound {
		log.Printf("⚠️  Wishlist: failed to read %s, starting empty: %v", key, err)
	}

	return w
}

// AddItem saves a product to the wishlist. Re-adding an already-saved
// product changes nothing and only surfaces an "already saved" notification.
func (w *Wishlist) AddItem(ctx context.Context, p models.Product) {
	if _, exists := w.Lookup(p.ID); exists {
		w.notifier.Notify(NotifyInfo, fmt.Sprintf("%s is already in your wishlist", p.Name))
		return
	}

	item := models.WishlistItem{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0]
	}
	w.items = append(w.items, item)
	w.persist(ctx)
	w.notifier.Notify(NotifySuccess, fmt.Sprintf("Added %s to wishlist", p.Name))
}

// RemoveItem removes the entry with the given id. Absent ids are a no-op.
func (w *Wishlist) RemoveItem(ctx context.Context, id string) {
	for i := range w.items {
		if w.items[i].ID == id {
			name := w.items[i].Name
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist(ctx)
			w.notifier.Notify(NotifyInfo, fmt.Sprintf("Removed %s from wishlist", name))
			return
		}
	}
}

// Toggle removes the product if it is saved, otherwise adds it
func (w *Wishlist) Toggle(ctx context.Context, p models.Product) {
	if _, exists := w.Lookup(p.ID); exists {
		w.RemoveItem(ctx, p.ID)
		return
	}
	w.AddItem(ctx, p)
}

// Clear empties the wishlist
func (w *Wishlist) Clear(ctx context.Context) {
	w.items = nil
	w.persist(ctx)
	w.notifier.Notify(NotifyInfo, "Wishlist cleared")
}

// Lookup returns the entry with the given id, if present
func (w *Wishlist) Lookup(id string) (models.WishlistItem, bool) {
	for _, item := range w.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.WishlistItem{}, false
}

// Items returns a copy of the wishlist entries
func (w *Wishlist) Items() []models.WishlistItem {
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

// TotalItemCount returns the number of saved products
func (w *Wishlist) TotalItemCount() int {
	return len(w.items)
}

func (w *Wishlist) persist(ctx context.Context) {
	data, err := json.Marshal(w.items)
	if err != nil {
		log.Printf("⚠️  Wishlist: failed to serialize %s: %v", w.key, err)
		return
	}
	if err := w.kv.Set(ctx, w.key, string(data)); err != nil {
		log.Printf("⚠️  Wishlist: failed to persist %s: %v", w.key, err)
	}
}
