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

// BookingController handles HTTP requests for fitting and consultation bookings
type BookingController struct {
	repository repository.BookingRepositoryInterface
}

// NewBookingController creates a new BookingController
func NewBookingController(repo repository.BookingRepositoryInterface) *BookingController {
	return &BookingController{
		repository: repo,
	}
}

// ListBookings handles GET /admin/bookings
// Supports an optional ?status= filter
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListBookings: Received %s request to %s", r.Method, r.URL.String())

	ctx := context.Background()
	bookings, err := c.repository.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("❌ ListBookings: Error listing bookings: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list bookings: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListBookings: Found %d bookings", len(bookings))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.BookingListResponse{Bookings: bookings}); err != nil {
		log.Printf("❌ ListBookings: Error encoding response: %v", err)
	}
}

// UpdateBookingStatus handles PATCH /admin/bookings/{id}/status
func (c *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/bookings/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("📥 UpdateBookingStatus: id=%s status=%s", id, req.Status)

	ctx := context.Background()
	booking, err := c.repository.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		log.Printf("❌ UpdateBookingStatus: Error updating booking: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Booking not found: %s", id), http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update booking: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateBookingStatus: id=%s status=%s", booking.ID, booking.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		log.Printf("❌ UpdateBookingStatus: Error encoding response: %v", err)
	}
}
