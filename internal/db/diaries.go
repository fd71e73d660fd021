package db

import (
	"context"

	"github.com/my-diary/backend/internal/model"
)

func (db *Postgres) CreateDiary(ctx context.Context, userID int64, title, content string) (*model.Diary, error) {
	query := `
		INSERT INTO diaries (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, user_id, title, content, created_at, updated_at
	`
	var diary model.Diary
	err := db.Pool.QueryRow(ctx, query, userID, title, content).Scan(
		&diary.ID,
		&diary.UserID,
		&diary.Title,
		&diary.Content,
		&diary.CreatedAt,
		&diary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &diary, nil
}

func (db *Postgres) ListDiariesByUser(ctx context.Context, userID int64) ([]model.Diary, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM diaries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	diaries := []model.Diary{}
	for rows.Next() {
		var diary model.Diary
		if err := rows.Scan(
			&diary.ID,
			&diary.UserID,
			&diary.Title,
			&diary.Content,
			&diary.CreatedAt,
			&diary.UpdatedAt,
		); err != nil {
			return nil, err
		}
		diaries = append(diaries, diary)
	}
	return diaries, rows.Err()
}

func (db *Postgres) GetDiaryByID(ctx context.Context, diaryID int64) (*model.Diary, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM diaries
		WHERE id = $1
	`
	var diary model.Diary
	err := db.Pool.QueryRow(ctx, query, diaryID).Scan(
		&diary.ID,
		&diary.UserID,
		&diary.Title,
		&diary.Content,
		&diary.CreatedAt,
		&diary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &diary, nil
}

func (db *Postgres) UpdateDiary(ctx context.Context, diaryID int64, title, content string) (*model.Diary, error) {
	query := `
		UPDATE diaries
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, title, content, created_at, updated_at
	`
	var diary model.Diary
	err := db.Pool.QueryRow(ctx, query, diaryID, title, content).Scan(
		&diary.ID,
		&diary.UserID,
		&diary.Title,
		&diary.Content,
		&diary.CreatedAt,
		&diary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &diary, nil
}

func (db *Postgres) DeleteDiary(ctx context.Context, diaryID int64) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM diaries WHERE id = $1`, diaryID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
