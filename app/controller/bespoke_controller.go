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
)

// BespokeController handles HTTP requests for bespoke tailoring requests
type BespokeController struct {
	repository repository.BespokeOrderRepositoryInterface
}

// NewBespokeController creates a new BespokeController
func NewBespokeController(repo repository.BespokeOrderRepositoryInterface) *BespokeController {
	return &BespokeController{
		repository: repo,
	}
}

// ListBespokeOrders handles GET /admin/bespoke-orders
func (c *BespokeController) ListBespokeOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListBespokeOrders: Received %s request to %s", r.Method, r.URL.String())

	ctx := context.Background()
	orders, err := c.repository.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("❌ ListBespokeOrders: Error listing orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list bespoke orders: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListBespokeOrders: Found %d orders", len(orders))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.BespokeOrderListResponse{Orders: orders}); err != nil {
		log.Printf("❌ ListBespokeOrders: Error encoding response: %v", err)
	}
}

// UpdateBespokeStatus handles PATCH /admin/bespoke-orders/{id}/status
func (c *BespokeController) UpdateBespokeStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/bespoke-orders/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid bespoke order id", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("📥 UpdateBespokeStatus: id=%s status=%s", id, req.Status)

	ctx := context.Background()
	order, err := c.repository.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		log.Printf("❌ UpdateBespokeStatus: Error updating order: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Bespoke order not found: %s", id), http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update bespoke order: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateBespokeStatus: id=%s status=%s", order.ID, order.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ UpdateBespokeStatus: Error encoding response: %v", err)
	}
}
