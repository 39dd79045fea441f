package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adire-boutique/models"
	"adire-boutique/store"
)

func wishlistRequest(t *testing.T, handler http.HandlerFunc, method, path, body string) (*httptest.ResponseRecorder, models.WishlistResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Session-ID", "shopper-1")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp models.WishlistResponse
	if rec.Code < 300 && rec.Body.Len() > 0 {
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
	}
	return rec, resp
}

func TestAddToWishlist_ReAddIsNoop(t *testing.T) {
	c := NewWishlistController(store.NewMemoryKV(), testCatalogue())

	rec, resp := wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "p1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp.TotalItemCount != 1 {
		t.Errorf("expected 1 saved product, got %d", resp.TotalItemCount)
	}

	_, resp = wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "p1"}`)
	if resp.TotalItemCount != 1 {
		t.Errorf("expected the wishlist unchanged on re-add, got %d entries", resp.TotalItemCount)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Kind != "info" {
		t.Errorf("expected an 'already saved' info toast, got %v", resp.Notifications)
	}
}

func TestToggleWishlist(t *testing.T) {
	c := NewWishlistController(store.NewMemoryKV(), testCatalogue())

	_, resp := wishlistRequest(t, c.ToggleWishlist, http.MethodPost, "/wishlist/toggle", `{"productId": "p1"}`)
	if resp.TotalItemCount != 1 {
		t.Fatalf("expected toggle to save the product, got %d entries", resp.TotalItemCount)
	}

	_, resp = wishlistRequest(t, c.ToggleWishlist, http.MethodPost, "/wishlist/toggle", `{"productId": "p1"}`)
	if resp.TotalItemCount != 0 {
		t.Errorf("expected toggle to remove the saved product, got %d entries", resp.TotalItemCount)
	}
}

func TestWishlistSurvivesAcrossRequests(t *testing.T) {
	kv := store.NewMemoryKV()
	c := NewWishlistController(kv, testCatalogue())

	wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "p1"}`)
	wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "p2"}`)

	rec, resp := wishlistRequest(t, c.GetWishlist, http.MethodGet, "/wishlist", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp.TotalItemCount != 2 {
		t.Errorf("expected the persisted wishlist back, got %+v", resp)
	}
}

func TestRemoveFromWishlist(t *testing.T) {
	c := NewWishlistController(store.NewMemoryKV(), testCatalogue())
	wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "p1"}`)

	rec, resp := wishlistRequest(t, c.RemoveFromWishlist, http.MethodDelete, "/wishlist/items/p1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp.TotalItemCount != 0 {
		t.Errorf("expected an empty wishlist, got %+v", resp)
	}
}

func TestAddToWishlist_UnknownProduct(t *testing.T) {
	c := NewWishlistController(store.NewMemoryKV(), testCatalogue())

	rec, _ := wishlistRequest(t, c.AddToWishlist, http.MethodPost, "/wishlist/items", `{"productId": "no-such"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
