package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"adire-boutique/models"
)

// Cart maintains a shopper's cart: one line per product id, with quantity.
// Every mutation synchronously writes the full collection back to the KV slot.
// Persistence is best-effort: read failures hydrate an empty cart, write
// failures are logged and swallowed, and the in-memory state stays
// authoritative for the session.
type Cart struct {
	kv       KVStore
	notifier Notifier
	key      string
	items    []models.CartLineItem
}

// NewCart creates a cart bound to the given KV slot and hydrates it.
// A missing slot or corrupt JSON yields an empty cart, never an error.
func NewCart(ctx context.Context, kv KVStore, notifier Notifier, key string) *Cart {
	c := &Cart{
		kv:       kv,
		notifier: notifier,
		key:      key,
	}

	raw, err := kv.Get(ctx, key)
	if err == nil {
		var items []models.CartLineItem
		if jsonErr := json.Unmarshal([]byte(raw), &items); jsonErr != nil {
			log.Printf("⚠️  Cart: corrupt data under %s, starting empty: %v", key, jsonErr)
		} else {
			c.items = items
		}
	} else if err != ErrKeyNotFound {
		log.Printf("⚠️  Cart: failed to read %s, starting empty: %v", key, err)
	}

	return c
}

// AddItem adds a product to the cart. If a line with the same id already
// exists its quantity is incremented by 1; otherwise a new line is appended
// with quantity 1. Price and display fields are snapshotted at add-time.
func (c *Cart) AddItem(ctx context.Context, p models.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			c.persist(ctx)
			c.notifier.Notify(NotifySuccess, fmt.Sprintf("Updated %s quantity to %d", c.items[i].Name, c.items[i].Quantity))
			return
		}
	}

	line := models.CartLineItem{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Quantity: 1,
	}
	if len(p.Images) > 0 {
		line.Image = p.Images[0]
	}
	c.items = append(c.items, line)
	c.persist(ctx)
	c.notifier.Notify(NotifySuccess, fmt.Sprintf("Added %s to cart", p.Name))
}

// RemoveItem removes the line with the given id. Absent ids are a no-op.
func (c *Cart) RemoveItem(ctx context.Context, id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			name := c.items[i].Name
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist(ctx)
			c.notifier.Notify(NotifyInfo, fmt.Sprintf("Removed %s from cart", name))
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity below 1 removes the
// line entirely. There is no upper clamp.
func (c *Cart) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(ctx, id)
		return
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear(ctx context.Context) {
	c.items = nil
	c.persist(ctx)
	c.notifier.Notify(NotifyInfo, "Cart cleared")
}

// Lookup returns the line with the given id, if present
func (c *Cart) Lookup(id string) (models.CartLineItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.CartLineItem{}, false
}

// Items returns a copy of the cart lines
func (c *Cart) Items() []models.CartLineItem {
	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItemCount returns the sum of quantities across all lines
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity across all lines
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

func (c *Cart) persist(ctx context.Context) {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("⚠️  Cart: failed to serialize %s: %v", c.key, err)
		return
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		log.Printf("⚠️  Cart: failed to persist %s: %v", c.key, err)
	}
}
