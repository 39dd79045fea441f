package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"adire-boutique/db"
	"adire-boutique/models"
)

// FinanceTransactionRepository handles database operations for the ledger
type FinanceTransactionRepository struct{}

// NewFinanceTransactionRepository creates a new FinanceTransactionRepository
func NewFinanceTransactionRepository() *FinanceTransactionRepository {
	return &FinanceTransactionRepository{}
}

// Ensure FinanceTransactionRepository implements FinanceTransactionRepositoryInterface
var _ FinanceTransactionRepositoryInterface = (*FinanceTransactionRepository)(nil)

// Create creates a new ledger entry
func (r *FinanceTransactionRepository) Create(ctx context.Context, req *models.CreateFinanceTransactionRequest) (*models.FinanceTransaction, error) {
	log.Printf("💰 CreateFinanceTransaction: type=%s, source=%s, amount=%d", req.Type, req.Source, req.Amount)

	if req.Type != "income" && req.Type != "expense" {
		return nil, fmt.Errorf("type must be 'income' or 'expense'")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}
	if req.Source == "" {
		return nil, fmt.Errorf("source is required")
	}
	if req.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != "" {
		var err error
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("invalid occurredAt format, use RFC3339: %w", err)
		}
	}

	query := `
		INSERT INTO finance_transactions (type, source, source_id, occurred_at, amount, destination, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, type, source, source_id, occurred_at, amount, destination, category, notes, created_at
	`

	var tx models.FinanceTransaction
	var sourceID, category, notes sql.NullString
	err := db.DB.QueryRowContext(ctx, query,
		req.Type,
		req.Source,
		sql.NullString{String: req.SourceID, Valid: req.SourceID != ""},
		occurredAt,
		req.Amount,
		req.Destination,
		sql.NullString{String: req.Category, Valid: req.Category != ""},
		sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	).Scan(
		&tx.ID,
		&tx.Type,
		&tx.Source,
		&sourceID,
		&tx.OccurredAt,
		&tx.Amount,
		&tx.Destination,
		&category,
		&notes,
		&tx.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateFinanceTransaction: Error creating transaction: %v", err)
		return nil, fmt.Errorf("failed to create finance transaction: %w", err)
	}

	if sourceID.Valid {
		tx.SourceID = sourceID.String
	}
	if category.Valid {
		tx.Category = category.String
	}
	if notes.Valid {
		tx.Notes = notes.String
	}

	log.Printf("✅ CreateFinanceTransaction: Successfully created transaction id=%d", tx.ID)
	return &tx, nil
}

// List lists ledger entries, optionally filtered by type, together with the
// income and expense totals over the returned rows
func (r *FinanceTransactionRepository) List(ctx context.Context, txType string) ([]models.FinanceTransaction, int64, int64, error) {
	query := `
		SELECT id, type, source, source_id, occurred_at, amount, destination, category, notes, created_at
		FROM finance_transactions
	`
	args := []any{}
	if txType != "" {
		query += ` WHERE type = $1`
		args = append(args, txType)
	}
	query += ` ORDER BY occurred_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list finance transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.FinanceTransaction
	var totalIncome, totalExpense int64
	for rows.Next() {
		var tx models.FinanceTransaction
		var sourceID, category, notes sql.NullString
		err := rows.Scan(
			&tx.ID,
			&tx.Type,
			&tx.Source,
			&sourceID,
			&tx.OccurredAt,
			&tx.Amount,
			&tx.Destination,
			&category,
			&notes,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to scan finance transaction: %w", err)
		}
		if sourceID.Valid {
			tx.SourceID = sourceID.String
		}
		if category.Valid {
			tx.Category = category.String
		}
		if notes.Valid {
			tx.Notes = notes.String
		}
		if tx.Type == "income" {
			totalIncome += tx.Amount
		} else {
			totalExpense += tx.Amount
		}
		transactions = append(transactions, tx)
	}
	return transactions, totalIncome, totalExpense, rows.Err()
}
