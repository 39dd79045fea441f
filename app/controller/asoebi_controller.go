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

// AsoEbiController handles HTTP requests for aso-ebi group requests
type AsoEbiController struct {
	repository repository.AsoEbiRepositoryInterface
}

// NewAsoEbiController creates a new AsoEbiController
func NewAsoEbiController(repo repository.AsoEbiRepositoryInterface) *AsoEbiController {
	return &AsoEbiController{
		repository: repo,
	}
}

// ListAsoEbiRequests handles GET /admin/asoebi-requests
func (c *AsoEbiController) ListAsoEbiRequests(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListAsoEbiRequests: Received %s request to %s", r.Method, r.URL.String())

	ctx := context.Background()
	requests, err := c.repository.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("❌ ListAsoEbiRequests: Error listing requests: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list aso-ebi requests: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListAsoEbiRequests: Found %d requests", len(requests))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.AsoEbiListResponse{Requests: requests}); err != nil {
		log.Printf("❌ ListAsoEbiRequests: Error encoding response: %v", err)
	}
}

// UpdateAsoEbiStatus handles PATCH /admin/asoebi-requests/{id}/status
func (c *AsoEbiController) UpdateAsoEbiStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/asoebi-requests/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid aso-ebi request id", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("📥 UpdateAsoEbiStatus: id=%s status=%s", id, req.Status)

	ctx := context.Background()
	request, err := c.repository.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		log.Printf("❌ UpdateAsoEbiStatus: Error updating request: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Aso-ebi request not found: %s", id), http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update aso-ebi request: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateAsoEbiStatus: id=%s status=%s", request.ID, request.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(request); err != nil {
		log.Printf("❌ UpdateAsoEbiStatus: Error encoding response: %v", err)
	}
}
