package repository

import (
	"context"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
)

// eligibleQuestionJoin walks a question up to its subject. Every link must be
// active and not soft-deleted for the question to be studied.
const eligibleQuestionJoin = `
	FROM questions q
	JOIN chapters c ON c.id = q.chapter_id
	JOIN titles t ON t.id = c.title_id
	JOIN laws l ON l.id = t.law_id
	JOIN subjects s ON s.id = l.subject_id
	WHERE q.active = @active AND c.active = @active AND t.active = @active
	  AND l.active = @active AND s.active = @active
	  AND q.deleted_at IS NULL AND c.deleted_at IS NULL AND t.deleted_at IS NULL
	  AND l.deleted_at IS NULL AND s.deleted_at IS NULL`

type QuestionRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	// SampleEligible returns up to limit eligible questions of a law in
	// unweighted random order.
	SampleEligible(ctx context.Context, lawID uint, limit int) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) SampleEligible(ctx context.Context, lawID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Raw(
		"SELECT q.*"+eligibleQuestionJoin+" AND l.id = @law ORDER BY RANDOM() LIMIT @limit",
		map[string]interface{}{"active": true, "law": lawID, "limit": limit},
	).Scan(&questions).Error
	return questions, err
}
