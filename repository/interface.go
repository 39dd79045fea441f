package repository

import (
	"context"

	"adire-boutique/models"
	"adire-boutique/wizard"
)

// ProductRepositoryInterface defines the operations for the product catalogue
type ProductRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Filter(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Deactivate(ctx context.Context, id string) error
	AttachImage(ctx context.Context, styleCode string, imageURL string) error
}

// OrderRepositoryInterface defines the operations for checkout orders
type OrderRepositoryInterface interface {
	CreateFromCart(ctx context.Context, req *models.CheckoutRequest, items []models.CartLineItem) (*models.CheckoutResponse, error)
	GetByID(ctx context.Context, id string) (*models.OrderDetailResponse, error)
	List(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
}

// BookingRepositoryInterface defines the operations for fitting/consultation bookings
type BookingRepositoryInterface interface {
	CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.Booking, error)
	List(ctx context.Context, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Booking, error)
}

// BespokeOrderRepositoryInterface defines the operations for bespoke tailoring requests
type BespokeOrderRepositoryInterface interface {
	CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.BespokeOrder, error)
	List(ctx context.Context, status string) ([]models.BespokeOrder, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.BespokeOrder, error)
}

// AsoEbiRepositoryInterface defines the operations for aso-ebi group requests
type AsoEbiRepositoryInterface interface {
	CreateFromAnswers(ctx context.Context, answers wizard.Answers) (*models.AsoEbiRequest, error)
	List(ctx context.Context, status string) ([]models.AsoEbiRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.AsoEbiRequest, error)
}

// QuizRepositoryInterface defines the operations for style quiz and outfit
// builder submissions
type QuizRepositoryInterface interface {
	CreateFromAnswers(ctx context.Context, flow string, answers wizard.Answers) (*models.QuizSubmission, error)
	List(ctx context.Context, flow string) ([]models.QuizSubmission, error)
}

// FinanceTransactionRepositoryInterface defines the operations for the ledger
type FinanceTransactionRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateFinanceTransactionRequest) (*models.FinanceTransaction, error)
	List(ctx context.Context, txType string) ([]models.FinanceTransaction, int64, int64, error)
}
