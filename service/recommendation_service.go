package service

import (
	"context"
	"fmt"
	"log"

	"adire-boutique/models"
	"adire-boutique/repository"
	"adire-boutique/wizard"
)

// RecommendationService turns style quiz answers into catalogue picks
type RecommendationService struct {
	productRepo repository.ProductRepositoryInterface
	quizRepo    repository.QuizRepositoryInterface
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(productRepo repository.ProductRepositoryInterface, quizRepo repository.QuizRepositoryInterface) *RecommendationService {
	return &RecommendationService{
		productRepo: productRepo,
		quizRepo:    quizRepo,
	}
}

const maxRecommendations = 6

// budgetBands maps the quiz budget answer to an NGN price ceiling.
// A zero ceiling means no cap.
var budgetBands = map[string]int64{
	"under-25k":  25_000,
	"25k-60k":    60_000,
	"60k-150k":   150_000,
	"above-150k": 0,
}

// Recommend persists the quiz submission and returns matching active products.
// The filter narrows progressively: category and fabric come straight from the
// answers, the budget answer sets a price ceiling. If the strict filter finds
// nothing, the fabric constraint is dropped so the shopper never gets an
// empty result for a stocked category.
func (s *RecommendationService) Recommend(ctx context.Context, flow string, answers wizard.Answers) (*models.RecommendationResponse, error) {
	if _, err := s.quizRepo.CreateFromAnswers(ctx, flow, answers); err != nil {
		return nil, fmt.Errorf("failed to save quiz submission: %w", err)
	}

	filter := &models.ProductFilter{
		OnlyActive: true,
		Category:   answers.String("category"),
		Fabric:     answers.String("fabric"),
	}
	if band, ok := budgetBands[answers.String("budget")]; ok && band > 0 {
		filter.MaxPrice = band
	}

	products, err := s.productRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}

	if len(products) == 0 && filter.Fabric != "" {
		log.Printf("🔍 Recommend: no %s products in %s, relaxing fabric filter", filter.Fabric, filter.Category)
		filter.Fabric = ""
		products, err = s.productRepo.Filter(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to filter products: %w", err)
		}
	}

	if len(products) > maxRecommendations {
		products = products[:maxRecommendations]
	}

	log.Printf("✅ Recommend: flow=%s matched %d products", flow, len(products))
	return &models.RecommendationResponse{Products: products}, nil
}
