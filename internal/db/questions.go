package db

import (
	"context"

	"github.com/my-diary/backend/internal/model"
)

func (db *Postgres) InsertQuestion(ctx context.Context, content string) (*model.Question, error) {
	query := `INSERT INTO questions (content) VALUES ($1) RETURNING id, content`
	var question model.Question
	if err := db.Pool.QueryRow(ctx, query, content).Scan(&question.ID, &question.Content); err != nil {
		return nil, err
	}
	return &question, nil
}

// GetRandomUnassignedQuestion picks a random question not yet assigned
// to the user. pgx.ErrNoRows when every question has been served.
func (db *Postgres) GetRandomUnassignedQuestion(ctx context.Context, userID int64) (*model.Question, error) {
	query := `
		SELECT q.id, q.content
		FROM questions q
		WHERE NOT EXISTS (
			SELECT 1 FROM user_questions uq
			WHERE uq.question_id = q.id AND uq.user_id = $1
		)
		ORDER BY RANDOM()
		LIMIT 1
	`
	var question model.Question
	if err := db.Pool.QueryRow(ctx, query, userID).Scan(&question.ID, &question.Content); err != nil {
		return nil, err
	}
	return &question, nil
}

// AssignQuestion marks a question as served to the user. Re-assigning
// the same pair is a no-op.
func (db *Postgres) AssignQuestion(ctx context.Context, userID, questionID int64) error {
	query := `
		INSERT INTO user_questions (user_id, question_id, assigned_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, question_id) DO NOTHING
	`
	_, err := db.Pool.Exec(ctx, query, userID, questionID)
	return err
}
