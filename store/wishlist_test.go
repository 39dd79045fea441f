package store

import (
	"context"
	"testing"
)

func TestWishlistAddItem_SetSemantics(t *testing.T) {
	ctx := context.Background()
	notifier := &CollectNotifier{}
	wl := NewWishlist(ctx, NewMemoryKV(), notifier, "wishlist:s1")

	wl.AddItem(ctx, ankaraGown())
	wl.AddItem(ctx, ankaraGown())

	if wl.TotalItemCount() != 1 {
		t.Fatalf("expected a single entry after re-add, got %d", wl.TotalItemCount())
	}
	if len(notifier.Events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.Events))
	}
	if notifier.Events[1].Kind != "info" {
		t.Errorf("expected re-add notification kind 'info', got %q", notifier.Events[1].Kind)
	}
	if notifier.Events[1].Text != "Ankara Flare Gown is already in your wishlist" {
		t.Errorf("unexpected re-add notification: %q", notifier.Events[1].Text)
	}
}

func TestWishlistToggle(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlist(ctx, NewMemoryKV(), NopNotifier{}, "wishlist:s1")

	wl.Toggle(ctx, ankaraGown())
	if _, exists := wl.Lookup("prod-1"); !exists {
		t.Fatal("expected toggle to add an unsaved product")
	}

	wl.Toggle(ctx, ankaraGown())
	if _, exists := wl.Lookup("prod-1"); exists {
		t.Fatal("expected toggle to remove a saved product")
	}
}

func TestWishlistRemoveItem_AbsentIDIsNoop(t *testing.T) {
	ctx := context.Background()
	wl := NewWishlist(ctx, NewMemoryKV(), NopNotifier{}, "wishlist:s1")
	wl.AddItem(ctx, ankaraGown())

	wl.RemoveItem(ctx, "no-such-product")

	if wl.TotalItemCount() != 1 {
		t.Errorf("expected wishlist untouched, got %d entries", wl.TotalItemCount())
	}
}

func TestWishlistPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	wl := NewWishlist(ctx, kv, NopNotifier{}, "wishlist:s1")
	wl.AddItem(ctx, ankaraGown())
	wl.AddItem(ctx, adireScarf())

	rehydrated := NewWishlist(ctx, kv, NopNotifier{}, "wishlist:s1")
	if rehydrated.TotalItemCount() != 2 {
		t.Fatalf("expected 2 entries after rehydration, got %d", rehydrated.TotalItemCount())
	}
	if item, _ := rehydrated.Lookup("prod-2"); item.Price != 12000 {
		t.Errorf("expected snapshotted price 12000, got %d", item.Price)
	}
}

func TestWishlistHydration_CorruptDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	if err := kv.Set(ctx, "wishlist:s1", "not json at all"); err != nil {
		t.Fatal(err)
	}

	wl := NewWishlist(ctx, kv, NopNotifier{}, "wishlist:s1")

	if wl.TotalItemCount() != 0 {
		t.Errorf("expected corrupt slot to hydrate empty, got %d entries", wl.TotalItemCount())
	}
}

func TestWishlistIsolatedFromCart(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	cart := NewCart(ctx, kv, NopNotifier{}, "cart:s1")
	wl := NewWishlist(ctx, kv, NopNotifier{}, "wishlist:s1")

	cart.AddItem(ctx, ankaraGown())
	wl.AddItem(ctx, adireScarf())

	if _, exists := wl.Lookup("prod-1"); exists {
		t.Error("cart mutation leaked into the wishlist")
	}
	if _, exists := cart.Lookup("prod-2"); exists {
		t.Error("wishlist mutation leaked into the cart")
	}
}
