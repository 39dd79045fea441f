package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"adire-boutique/repository"
	"adire-boutique/service"
	"adire-boutique/wizard"
)

// QuizController handles HTTP requests for style quiz recommendations and
// the admin view of stored submissions
type QuizController struct {
	recommendations *service.RecommendationService
	repository      repository.QuizRepositoryInterface
}

// NewQuizController creates a new QuizController
func NewQuizController(recommendations *service.RecommendationService, repo repository.QuizRepositoryInterface) *QuizController {
	return &QuizController{
		recommendations: recommendations,
		repository:      repo,
	}
}

// RecommendRequest represents the request body for fetching recommendations
// Example: {"flow": "style-quiz", "answers": {"category": "ready-to-wear", "fabric": "ankara", "budget": "25k-60k"}}
type RecommendRequest struct {
	Flow    string         `json:"flow"`
	Answers map[string]any `json:"answers"`
}

// Recommend handles POST /quiz/recommendations
// Saves the submission and returns matching catalogue products
func (c *QuizController) Recommend(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Recommend: Received %s request to %s", r.Method, r.URL.Path)

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Recommend: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Flow != "style-quiz" && req.Flow != "outfit-builder" {
		http.Error(w, "flow must be 'style-quiz' or 'outfit-builder'", http.StatusBadRequest)
		return
	}
	if len(req.Answers) == 0 {
		http.Error(w, "answers cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	response, err := c.recommendations.Recommend(ctx, req.Flow, wizard.Answers(req.Answers))
	if err != nil {
		log.Printf("❌ Recommend: Error building recommendations: %v", err)
		http.Error(w, fmt.Sprintf("Failed to build recommendations: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Recommend: Error encoding response: %v", err)
	}
}

// ListSubmissions handles GET /admin/quiz-submissions
// Supports an optional ?flow= filter
func (c *QuizController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListSubmissions: Received %s request to %s", r.Method, r.URL.String())

	flow := r.URL.Query().Get("flow")
	if flow != "" && flow != "style-quiz" && flow != "outfit-builder" {
		http.Error(w, "flow must be 'style-quiz' or 'outfit-builder'", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	submissions, err := c.repository.List(ctx, flow)
	if err != nil {
		log.Printf("❌ ListSubmissions: Error listing submissions: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list submissions: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListSubmissions: Found %d submissions", len(submissions))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{"submissions": submissions}); err != nil {
		log.Printf("❌ ListSubmissions: Error encoding response: %v", err)
	}
}
