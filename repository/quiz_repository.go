package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"adire-boutique/db"
	"adire-boutique/models"
	"adire-boutique/wizard"
)

// QuizRepository handles database operations for style quiz and outfit
// builder submissions
type QuizRepository struct{}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository() *QuizRepository {
	return &QuizRepository{}
}

// Ensure QuizRepository implements QuizRepositoryInterface
var _ QuizRepositoryInterface = (*QuizRepository)(nil)

// CreateFromAnswers stores the raw composed answers for marketing follow-up
func (r *QuizRepository) CreateFromAnswers(ctx context.Context, flow string, answers wizard.Answers) (*models.QuizSubmission, error) {
	log.Printf("📝 CreateQuizSubmission: flow=%s", flow)

	if flow == "" {
		return nil, fmt.Errorf("flow cannot be empty")
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO quiz_submissions (id, flow, answers)
		VALUES ($1, $2, $3)
		RETURNING id, flow, answers, created_at
	`

	var submission models.QuizSubmission
	err = db.DB.QueryRowContext(ctx, query, uuid.NewString(), flow, string(answersJSON)).Scan(
		&submission.ID,
		&submission.Flow,
		&submission.Answers,
		&submission.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateQuizSubmission: Error creating submission: %v", err)
		return nil, fmt.Errorf("failed to create quiz submission: %w", err)
	}

	log.Printf("✅ CreateQuizSubmission: Successfully created submission id=%s", submission.ID)
	return &submission, nil
}

// List lists submissions, optionally filtered by flow
func (r *QuizRepository) List(ctx context.Context, flow string) ([]models.QuizSubmission, error) {
	query := `SELECT id, flow, answers, created_at FROM quiz_submissions`
	args := []any{}
	if flow != "" {
		query += ` WHERE flow = $1`
		args = append(args, flow)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.QuizSubmission
	for rows.Next() {
		var submission models.QuizSubmission
		if err := rows.Scan(&submission.ID, &submission.Flow, &submission.Answers, &submission.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	return submissions, rows.Err()
}
