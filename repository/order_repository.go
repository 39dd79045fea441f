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
)

// OrderRepository handles database operations for checkout orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// validOrderStatuses are the admin-settable order states
var validOrderStatuses = map[string]bool{
	"pending_payment": true,
	"paid":            true,
	"fulfilled":       true,
	"canceled":        true,
}

// CreateFromCart creates an order plus its lines from a cart snapshot in one
// transaction. Unit prices are frozen from the cart, not re-read from the
// catalogue.
func (r *OrderRepository) CreateFromCart(ctx context.Context, req *models.CheckoutRequest, items []models.CartLineItem) (*models.CheckoutResponse, error) {
	log.Printf("📦 CreateOrder: customer=%s, lines=%d", req.CustomerName, len(items))

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("customerName cannot be empty")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("customerPhone cannot be empty")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ CreateOrder: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	orderID := uuid.NewString()
	paymentRef := uuid.NewString()

	query := `
		INSERT INTO orders (id, status, customer_name, customer_phone, customer_email, delivery_address, notes, payment_reference, total)
		VALUES ($1, 'pending_payment', $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, customer_name, customer_phone, customer_email, delivery_address, notes, payment_reference, total, created_at, updated_at
	`

	var order models.Order
	var email, address, notes sql.NullString
	err = tx.QueryRowContext(ctx, query,
		orderID,
		req.CustomerName,
		req.CustomerPhone,
		sql.NullString{String: req.CustomerEmail, Valid: req.CustomerEmail != ""},
		sql.NullString{String: req.DeliveryAddress, Valid: req.DeliveryAddress != ""},
		sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		paymentRef,
		total,
	).Scan(
		&order.ID,
		&order.Status,
		&order.CustomerName,
		&order.CustomerPhone,
		&email,
		&address,
		&notes,
		&order.PaymentReference,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateOrder: Error creating order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if email.Valid {
		order.CustomerEmail = email.String
	}
	if address.Valid {
		order.DeliveryAddress = address.String
	}
	if notes.Valid {
		order.Notes = notes.String
	}

	lines := make([]models.OrderLine, 0, len(items))
	lineQuery := `
		INSERT INTO order_lines (order_id, product_id, product_name, unit_price, qty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for _, item := range items {
		line := models.OrderLine{
			OrderID:     orderID,
			ProductID:   item.ID,
			ProductName: item.Name,
			UnitPrice:   item.Price,
			Qty:         item.Quantity,
		}
		if err := tx.QueryRowContext(ctx, lineQuery, orderID, item.ID, item.Name, item.Price, item.Quantity).Scan(&line.ID); err != nil {
			log.Printf("❌ CreateOrder: Error creating line for product %s: %v", item.ID, err)
			return nil, fmt.Errorf("failed to create order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	log.Printf("✅ CreateOrder: Successfully created order id=%s total=%d", order.ID, order.Total)
	return &models.CheckoutResponse{Order: order, Lines: lines}, nil
}

// GetByID fetches an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.OrderDetailResponse, error) {
	query := `
		SELECT id, status, customer_name, customer_phone, customer_email, delivery_address, notes, payment_reference, total, created_at, updated_at
		FROM orders WHERE id = $1
	`

	var detail models.OrderDetailResponse
	var email, address, notes sql.NullString
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Status,
		&detail.CustomerName,
		&detail.CustomerPhone,
		&email,
		&address,
		&notes,
		&detail.PaymentReference,
		&detail.Total,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if email.Valid {
		detail.CustomerEmail = email.String
	}
	if address.Valid {
		detail.DeliveryAddress = address.String
	}
	if notes.Valid {
		detail.Notes = notes.String
	}

	rows, err := db.DB.QueryContext(ctx,
		`SELECT id, order_id, product_id, product_name, unit_price, qty FROM order_lines WHERE order_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.ProductName, &line.UnitPrice, &line.Qty); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		detail.Lines = append(detail.Lines, line)
	}
	return &detail, rows.Err()
}

// List lists orders, optionally filtered by status
func (r *OrderRepository) List(ctx context.Context, status string) ([]models.Order, error) {
	query := `
		SELECT id, status, customer_name, customer_phone, customer_email, delivery_address, notes, payment_reference, total, created_at, updated_at
		FROM orders
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		var email, address, notes sql.NullString
		err := rows.Scan(
			&order.ID,
			&order.Status,
			&order.CustomerName,
			&order.CustomerPhone,
			&email,
			&address,
			&notes,
			&order.PaymentReference,
			&order.Total,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if email.Valid {
			order.CustomerEmail = email.String
		}
		if address.Valid {
			order.DeliveryAddress = address.String
		}
		if notes.Valid {
			order.Notes = notes.String
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus transitions an order to a new status
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validOrderStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	query := `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
		RETURNING id, status, customer_name, customer_phone, customer_email, delivery_address, notes, payment_reference, total, created_at, updated_at
	`

	var order models.Order
	var email, address, notes sql.NullString
	err := db.DB.QueryRowContext(ctx, query, status, id).Scan(
		&order.ID,
		&order.Status,
		&order.CustomerName,
		&order.CustomerPhone,
		&email,
		&address,
		&notes,
		&order.PaymentReference,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		log.Printf("❌ UpdateOrderStatus: Error updating order %s: %v", id, err)
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if email.Valid {
		order.CustomerEmail = email.String
	}
	if address.Valid {
		order.DeliveryAddress = address.String
	}
	if notes.Valid {
		order.Notes = notes.String
	}

	log.Printf("✅ UpdateOrderStatus: order %s is now %s", order.ID, order.Status)
	return &order, nil
}
