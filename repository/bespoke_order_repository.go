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

// BespokeOrderRepository handles database operations for bespoke tailoring requests
type BespokeOrderRepository struct{}

// NewBespokeOrderRepository creates a new BespokeOrderRepository
func NewBespokeOrderRepository() *BespokeOrderRepository {
	return &BespokeOrderRepository{}
}

// Ensure BespokeOrderRepository implements BespokeOrderRepositoryInterface
var _ BespokeOrderRepositoryInterface = (*BespokeOrderRepository)(nil)

var validBespokeStatuses = map[string]bool{
	"received":  true,
	"in_review": true,
	"quoted":    true,
	"accepted":  true,
	"declined":  true,
}

const bespokeColumns = `id, status, garment, fabric, style, measurements, budget, customer_name, customer_phone, notes, created_at`

// CreateFromAnswers composes a bespoke order from the configurator wizard's answers
func (r *BespokeOrderRepository) CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.BespokeOrder, error) {
	garment := answers.String("garment")
	fabric := answers.String("fabric")
	customerName := answers.String("customer_name")
	customerPhone := answers.String("customer_phone")

	log.Printf("✂️  CreateBespokeOrder: garment=%s, fabric=%s, customer=%s", garment, fabric, customerName)

	if strings.TrimSpace(garment) == "" {
		return nil, fmt.Errorf("garment cannot be empty")
	}
	if strings.TrimSpace(fabric) == "" {
		return nil, fmt.Errorf("fabric cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("customer_name cannot be empty")
	}
	if strings.TrimSpace(customerPhone) == "" {
		return nil, fmt.Errorf("customer_phone cannot be empty")
	}

	query := `
		INSERT INTO bespoke_orders (id, status, garment, fabric, style, measurements, budget, customer_name, customer_phone, notes)
		VALUES ($1, 'received', $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bespokeColumns

	style := answers.String("style")
	measurements := answers.String("measurements")
	notes := answers.String("notes")
	row := db.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		strings.ToLower(strings.TrimSpace(garment)),
		strings.ToLower(strings.TrimSpace(fabric)),
		sql.NullString{String: style, Valid: style != ""},
		sql.NullString{String: measurements, Valid: measurements != ""},
		sql.NullInt64{Int64: answers.Int64("budget"), Valid: answers.Int64("budget") > 0},
		customerName,
		customerPhone,
		sql.NullString{String: notes, Valid: notes != ""},
	)

	order, err := scanBespokeOrder(row)
	if err != nil {
		log.Printf("❌ CreateBespokeOrder: Error creating bespoke order: %v", err)
		return nil, fmt.Errorf("failed to create bespoke order: %w", err)
	}

	log.Printf("✅ CreateBespokeOrder: Successfully created bespoke order id=%s", order.ID)
	return order, nil
}

// List lists bespoke orders, optionally filtered by status
func (r *BespokeOrderRepository) List(ctx context.Context, status string) ([]models.BespokeOrder, error) {
	query := `SELECT ` + bespokeColumns + ` FROM bespoke_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bespoke orders: %w", err)
	}
	defer rows.Close()

	var orders []models.BespokeOrder
	for rows.Next() {
		order, err := scanBespokeOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bespoke order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateStatus transitions a bespoke order to a new status
func (r *BespokeOrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.BespokeOrder, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validBespokeStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	query := `UPDATE bespoke_orders SET status = $1 WHERE id = $2 RETURNING ` + bespokeColumns

	order, err := scanBespokeOrder(db.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bespoke order not found")
		}
		return nil, fmt.Errorf("failed to update bespoke order status: %w", err)
	}

	log.Printf("✅ UpdateBespokeOrderStatus: order %s is now %s", order.ID, order.Status)
	return order, nil
}

func scanBespokeOrder(row rowScanner) (*models.BespokeOrder, error) {
	var order models.BespokeOrder
	var style, measurements, notes sql.NullString
	var budget sql.NullInt64

	err := row.Scan(
		&order.ID,
		&order.Status,
		&order.Garment,
		&order.Fabric,
		&style,
		&measurements,
		&budget,
		&order.CustomerName,
		&order.CustomerPhone,
		&notes,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if style.Valid {
		order.Style = style.String
	}
	if measurements.Valid {
		order.Measurements = measurements.String
	}
	if budget.Valid {
		order.Budget = budget.Int64
	}
	if notes.Valid {
		order.Notes = notes.String
	}
	return &order, nil
}
