package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"adire-boutique/db"
	"adire-boutique/models"
	"adire-boutique/wizard"
)

// BookingRepository handles database operations for fitting/consultation bookings
type BookingRepository struct{}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Ensure BookingRepository implements BookingRepositoryInterface
var _ BookingRepositoryInterface = (*BookingRepository)(nil)

var validBookingStatuses = map[string]bool{
	"requested": true,
	"confirmed": true,
	"completed": true,
	"canceled":  true,
}

const bookingColumns = `id, status, service, customer_name, customer_phone, preferred_date, preferred_time, notes, created_at, updated_at`

// CreateFromAnswers composes a booking from the booking wizard's answers
func (r *BookingRepository) CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.Booking, error) {
	service := answers.String("service")
	customerName := answers.String("customer_name")
	customerPhone := answers.String("customer_phone")
	preferredDate := answers.String("preferred_date")

	log.Printf("📅 CreateBooking: service=%s, customer=%s, date=%s", service, customerName, preferredDate)

	if strings.TrimSpace(service) == "" {
		return nil, fmt.Errorf("service cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("customer_name cannot be empty")
	}
	if strings.TrimSpace(customerPhone) == "" {
		return nil, fmt.Errorf("customer_phone cannot be empty")
	}
	if strings.TrimSpace(preferredDate) == "" {
		return nil, fmt.Errorf("preferred_date cannot be empty")
	}

	query := `
		INSERT INTO bookings (id, status, service, customer_name, customer_phone, preferred_date, preferred_time, notes)
		VALUES ($1, 'requested', $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns

	preferredTime := answers.String("preferred_time")
	notes := answers.String("notes")
	row := db.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		strings.ToLower(strings.TrimSpace(service)),
		customerName,
		customerPhone,
		preferredDate,
		sql.NullString{String: preferredTime, Valid: preferredTime != ""},
		sql.NullString{String: notes, Valid: notes != ""},
	)

	booking, err := scanBooking(row)
	if err != nil {
		log.Printf("❌ CreateBooking: Error creating booking: %v", err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Printf("✅ CreateBooking: Successfully created booking id=%s", booking.ID)
	return booking, nil
}

// List lists bookings, optionally filtered by status
func (r *BookingRepository) List(ctx context.Context, status string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

// UpdateStatus transitions a booking to a new status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Booking, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validBookingStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	query := `UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2 RETURNING ` + bookingColumns

	booking, err := scanBooking(db.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	log.Printf("✅ UpdateBookingStatus: booking %s is now %s", booking.ID, booking.Status)
	return booking, nil
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var booking models.Booking
	var preferredTime, notes sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.Status,
		&booking.Service,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.PreferredDate,
		&preferredTime,
		&notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if preferredTime.Valid {
		booking.PreferredTime = preferredTime.String
	}
	if notes.Valid {
		booking.Notes = notes.String
	}
	return &booking, nil
}
