package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"adire-boutique/models"
	"adire-boutique/repository"
)

// FinanceTransactionController handles HTTP requests for the ledger
type FinanceTransactionController struct {
	repository repository.FinanceTransactionRepositoryInterface
}

// NewFinanceTransactionController creates a new FinanceTransactionController
func NewFinanceTransactionController(repo repository.FinanceTransactionRepositoryInterface) *FinanceTransactionController {
	return &FinanceTransactionController{
		repository: repo,
	}
}

// CreateTransaction handles POST /admin/finance/transactions
func (c *FinanceTransactionController) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateTransaction: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateFinanceTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateTransaction: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	tx, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateTransaction: Error creating transaction: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create transaction: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("✅ CreateTransaction: Successfully created transaction id=%d", tx.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(tx); err != nil {
		log.Printf("❌ CreateTransaction: Error encoding response: %v", err)
	}
}

// ListTransactions handles GET /admin/finance/transactions
// Supports an optional ?type= filter ('income' or 'expense')
func (c *FinanceTransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListTransactions: Received %s request to %s", r.Method, r.URL.String())

	txType := r.URL.Query().Get("type")
	if txType != "" && txType != "income" && txType != "expense" {
		http.Error(w, "type must be 'income' or 'expense'", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	transactions, totalIncome, totalExpense, err := c.repository.List(ctx, txType)
	if err != nil {
		log.Printf("❌ ListTransactions: Error listing transactions: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list transactions: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListTransactions: Found %d transactions", len(transactions))

	response := models.FinanceTransactionListResponse{
		Transactions: transactions,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListTransactions: Error encoding response: %v", err)
	}
}
