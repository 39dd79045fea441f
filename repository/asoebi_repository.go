package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"adire-boutique/db"
	"adire-boutique/models"
	"adire-boutique/pricing"
	"adire-boutique/wizard"
)

// AsoEbiRepository handles database operations for aso-ebi group requests
type AsoEbiRepository struct{}

// NewAsoEbiRepository creates a new AsoEbiRepository
func NewAsoEbiRepository() *AsoEbiRepository {
	return &AsoEbiRepository{}
}

// Ensure AsoEbiRepository implements AsoEbiRepositoryInterface
var _ AsoEbiRepositoryInterface = (*AsoEbiRepository)(nil)

var validAsoEbiStatuses = map[string]bool{
	"received":  true,
	"quoted":    true,
	"confirmed": true,
	"canceled":  true,
}

const asoEbiColumns = `id, status, event_type, event_date, fabric_id, fabric_name, guests, quoted_total, coordinator_name, coordinator_phone, notes, created_at`

// CreateFromAnswers composes an aso-ebi request from the coordinator wizard's
// answers. The group quote is calculated from the guest count via the pricing
// engine when one is loaded.
func (r *AsoEbiRepository) CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.AsoEbiRequest, error) {
	eventType := answers.String("event_type")
	eventDate := answers.String("event_date")
	fabricID := answers.String("fabric_id")
	coordinatorName := answers.String("coordinator_name")
	coordinatorPhone := answers.String("coordinator_phone")

	log.Printf("🎉 CreateAsoEbiRequest: event=%s, date=%s, coordinator=%s", eventType, eventDate, coordinatorName)

	if strings.TrimSpace(eventType) == "" {
		return nil, fmt.Errorf("event_type cannot be empty")
	}
	if strings.TrimSpace(eventDate) == "" {
		return nil, fmt.Errorf("event_date cannot be empty")
	}
	if strings.TrimSpace(fabricID) == "" {
		return nil, fmt.Errorf("fabric_id cannot be empty")
	}
	if strings.TrimSpace(coordinatorName) == "" {
		return nil, fmt.Errorf("coordinator_name cannot be empty")
	}
	if strings.TrimSpace(coordinatorPhone) == "" {
		return nil, fmt.Errorf("coordinator_phone cannot be empty")
	}

	guests := make([]models.AsoEbiGuest, 0)
	for _, entry := range answers.Entries("guests") {
		name, _ := entry["name"].(string)
		phone, _ := entry["phone"].(string)
		size, _ := entry["size"].(string)
		guests = append(guests, models.AsoEbiGuest{Name: name, Phone: phone, Size: size})
	}
	if len(guests) == 0 {
		return nil, fmt.Errorf("at least one guest is required")
	}

	var quotedTotal int64
	if engine := pricing.GetEngine(); engine != nil {
		quote, err := engine.QuoteGroup("asoebi-fabric", len(guests))
		if err != nil {
			log.Printf("⚠️  CreateAsoEbiRequest: could not quote group: %v", err)
		} else {
			quotedTotal = quote.Total
		}
	}

	guestsJSON, err := json.Marshal(guests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode guests: %w", err)
	}

	query := `
		INSERT INTO asoebi_requests (id, status, event_type, event_date, fabric_id, fabric_name, guests, quoted_total, coordinator_name, coordinator_phone, notes)
		VALUES ($1, 'received', $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + asoEbiColumns

	fabricName := answers.String("fabric_name")
	notes := answers.String("notes")
	row := db.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		strings.ToLower(strings.TrimSpace(eventType)),
		eventDate,
		fabricID,
		sql.NullString{String: fabricName, Valid: fabricName != ""},
		string(guestsJSON),
		quotedTotal,
		coordinatorName,
		coordinatorPhone,
		sql.NullString{String: notes, Valid: notes != ""},
	)

	request, err := scanAsoEbiRequest(row)
	if err != nil {
		log.Printf("❌ CreateAsoEbiRequest: Error creating request: %v", err)
		return nil, fmt.Errorf("failed to create aso-ebi request: %w", err)
	}

	log.Printf("✅ CreateAsoEbiRequest: Successfully created request id=%s guests=%d", request.ID, len(request.Guests))
	return request, nil
}

// List lists aso-ebi requests, optionally filtered by status
func (r *AsoEbiRepository) List(ctx context.Context, status string) ([]models.AsoEbiRequest, error) {
	query := `SELECT ` + asoEbiColumns + ` FROM asoebi_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list aso-ebi requests: %w", err)
	}
	defer rows.Close()

	var requests []models.AsoEbiRequest
	for rows.Next() {
		request, err := scanAsoEbiRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aso-ebi request: %w", err)
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

// UpdateStatus transitions an aso-ebi request to a new status
func (r *AsoEbiRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.AsoEbiRequest, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validAsoEbiStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	query := `UPDATE asoebi_requests SET status = $1 WHERE id = $2 RETURNING ` + asoEbiColumns

	request, err := scanAsoEbiRequest(db.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("aso-ebi request not found")
		}
		return nil, fmt.Errorf("failed to update aso-ebi request status: %w", err)
	}

	log.Printf("✅ UpdateAsoEbiStatus: request %s is now %s", request.ID, request.Status)
	return request, nil
}

func scanAsoEbiRequest(row rowScanner) (*models.AsoEbiRequest, error) {
	var request models.AsoEbiRequest
	var fabricName, notes sql.NullString
	var guestsJSON []byte

	err := row.Scan(
		&request.ID,
		&request.Status,
		&request.EventType,
		&request.EventDate,
		&request.FabricID,
		&fabricName,
		&guestsJSON,
		&request.QuotedTotal,
		&request.CoordinatorName,
		&request.CoordinatorPhone,
		&notes,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fabricName.Valid {
		request.FabricName = fabricName.String
	}
	if notes.Valid {
		request.Notes = notes.String
	}
	if len(guestsJSON) > 0 {
		if err := json.Unmarshal(guestsJSON, &request.Guests); err != nil {
			return nil, fmt.Errorf("failed to decode guests: %w", err)
		}
	}
	return &request, nil
}
