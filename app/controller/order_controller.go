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

// OrderController handles HTTP requests for checkout orders
type OrderController struct {
	repository  repository.OrderRepositoryInterface
	financeRepo repository.FinanceTransactionRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(
	repo repository.OrderRepositoryInterface,
	financeRepo repository.FinanceTransactionRepositoryInterface,
) *OrderController {
	return &OrderController{
		repository:  repo,
		financeRepo: financeRepo,
	}
}

// ListOrders handles GET /admin/orders
// Supports an optional ?status= filter
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListOrders: Received %s request to %s", r.Method, r.URL.String())

	ctx := context.Background()
	orders, err := c.repository.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("❌ ListOrders: Error listing orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list orders: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListOrders: Found %d orders", len(orders))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.OrderListResponse{Orders: orders}); err != nil {
		log.Printf("❌ ListOrders: Error encoding response: %v", err)
	}
}

// GetOrder handles GET /admin/orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	log.Printf("📥 GetOrder: id=%s", id)

	ctx := context.Background()
	order, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetOrder: Error fetching order: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Order not found: %s", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch order: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ GetOrder: Error encoding response: %v", err)
	}
}

// UpdateOrderStatus handles PATCH /admin/orders/{id}/status
// Marking an order paid also writes an income entry to the ledger
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("📥 UpdateOrderStatus: id=%s status=%s", id, req.Status)

	ctx := context.Background()
	order, err := c.repository.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		log.Printf("❌ UpdateOrderStatus: Error updating order: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Order not found: %s", id), http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update order: %v", err), http.StatusInternalServerError)
		return
	}

	if order.Status == "paid" && c.financeRepo != nil {
		// The order record stays authoritative; a ledger write failure is
		// logged for manual reconciliation rather than failing the request
		_, ledgerErr := c.financeRepo.Create(ctx, &models.CreateFinanceTransactionRequest{
			Type:        "income",
			Source:      "order",
			SourceID:    order.ID,
			Amount:      order.Total,
			Destination: "bank",
			Category:    "sales",
			Notes:       fmt.Sprintf("Payment for order %s", order.PaymentReference),
		})
		if ledgerErr != nil {
			log.Printf("⚠️  UpdateOrderStatus: failed to record income for order %s: %v", order.ID, ledgerErr)
		}
	}

	log.Printf("✅ UpdateOrderStatus: id=%s status=%s", order.ID, order.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Printf("❌ UpdateOrderStatus: Error encoding response: %v", err)
	}
}
