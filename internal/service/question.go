package service

import (
	"context"
	"fmt"

	"github.com/my-diary/backend/internal/db"
	"github.com/my-diary/backend/internal/model"
)

type QuestionStore interface {
	GetRandomUnassignedQuestion(ctx context.Context, userID int64) (*model.Question, error)
	AssignQuestion(ctx context.Context, userID, questionID int64) error
}

type QuestionService struct {
	store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{store: store}
}

// RandomUnanswered serves a question the user has not seen, recording
// the assignment so the same question is not served twice.
func (s *QuestionService) RandomUnanswered(ctx context.Context, userID int64) (*model.Question, error) {
	question, err := s.store.GetRandomUnassignedQuestion(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: no unanswered questions left", ErrNotFound)
		}
		return nil, err
	}

	if err := s.store.AssignQuestion(ctx, userID, question.ID); err != nil {
		return nil, err
	}
	return question, nil
}
