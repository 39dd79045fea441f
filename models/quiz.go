package models

// QuizSubmission represents a completed style quiz or outfit builder run.
// Answers are stored as the raw composed record for later marketing use.
type QuizSubmission struct {
	ID        string `json:"id"`
	Flow      string `json:"flow"` // "style-quiz" or "outfit-builder"
	Answers   string `json:"answers"` // JSON-encoded answers map
	CreatedAt string `json:"createdAt"`
}

// RecommendationResponse represents the products recommended for a quiz result
// Example response:
// {"products": [{"id": "p1", "name": "Ankara Wrap Dress", "price": 45000}]}
type RecommendationResponse struct {
	Products []Product `json:"products"`
}
