package service

import (
	"context"
	"fmt"

	"github.com/my-diary/backend/internal/db"
	"github.com/my-diary/backend/internal/model"
)

type DiaryStore interface {
	CreateDiary(ctx context.Context, userID int64, title, content string) (*model.Diary, error)
	ListDiariesByUser(ctx context.Context, userID int64) ([]model.Diary, error)
	GetDiaryByID(ctx context.Context, diaryID int64) (*model.Diary, error)
	UpdateDiary(ctx context.Context, diaryID int64, title, content string) (*model.Diary, error)
	DeleteDiary(ctx context.Context, diaryID int64) (int64, error)
}

type DiaryService struct {
	store DiaryStore
}

func NewDiaryService(store DiaryStore) *DiaryService {
	return &DiaryService{store: store}
}

func (s *DiaryService) Create(ctx context.Context, userID int64, title, content string) (*model.Diary, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	return s.store.CreateDiary(ctx, userID, title, content)
}

func (s *DiaryService) ListForUser(ctx context.Context, userID int64) ([]model.Diary, error) {
	return s.store.ListDiariesByUser(ctx, userID)
}

// Get returns the diary only to its owner. A diary owned by someone
// else reads as not-found so its existence is not leaked.
func (s *DiaryService) Get(ctx context.Context, userID, diaryID int64) (*model.Diary, error) {
	diary, err := s.store.GetDiaryByID(ctx, diaryID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: diary not found", ErrNotFound)
		}
		return nil, err
	}
	if diary.UserID != userID {
		return nil, fmt.Errorf("%w: diary not found", ErrNotFound)
	}
	return diary, nil
}

// Update applies a partial update: empty fields keep current values.
func (s *DiaryService) Update(ctx context.Context, userID, diaryID int64, req model.DiaryUpdateRequest) (*model.Diary, error) {
	diary, err := s.Get(ctx, userID, diaryID)
	if err != nil {
		return nil, err
	}

	title := diary.Title
	if req.Title != "" {
		title = req.Title
	}
	content := diary.Content
	if req.Content != "" {
		content = req.Content
	}

	return s.store.UpdateDiary(ctx, diaryID, title, content)
}

func (s *DiaryService) Delete(ctx context.Context, userID, diaryID int64) error {
	if _, err := s.Get(ctx, userID, diaryID); err != nil {
		return err
	}
	_, err := s.store.DeleteDiary(ctx, diaryID)
	return err
}
