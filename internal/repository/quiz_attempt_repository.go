package repository

import (
	"context"
	"time"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizAttemptRepository interface {
	// WithTx binds the repository to a running transaction.
	WithTx(tx *gorm.DB) QuizAttemptRepository
	// LockUser serializes attempt changes of one user. It is a no-op on
	// dialects without row locks.
	LockUser(ctx context.Context, userID uint) error
	// DeleteInProgressByUser removes the user's in-progress attempts and their
	// items, returning how many attempts were removed.
	DeleteInProgressByUser(ctx context.Context, userID uint) (int64, error)
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.QuizAttempt, error)
	FindByIDWithDetails(ctx context.Context, id, userID uint) (*model.QuizAttempt, error)
	// UpdateItemAnswer stores an answer only while the item's attempt is in
	// progress. It reports whether a row was written.
	UpdateItemAnswer(ctx context.Context, item *model.QuizAttemptItem) (bool, error)
	MarkFinished(ctx context.Context, attempt *model.QuizAttempt, at time.Time) error
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) WithTx(tx *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: tx}
}

func (r *quizAttemptRepository) LockUser(ctx context.Context, userID uint) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	var user model.User
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&user, userID).Error
}

func (r *quizAttemptRepository) DeleteInProgressByUser(ctx context.Context, userID uint) (int64, error) {
	db := r.db.WithContext(ctx)
	stale := db.Model(&model.QuizAttempt{}).
		Select("id").
		Where("user_id = ? AND status = ?", userID, model.AttemptStatusInProgress)

	if err := db.Where("quiz_attempt_id IN (?)", stale).Delete(&model.QuizAttemptItem{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("user_id = ? AND status = ?", userID, model.AttemptStatusInProgress).Delete(&model.QuizAttempt{})
	return res.RowsAffected, res.Error
}

func (r *quizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	// Items are inserted in slice order, so their ids follow the sample order.
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *quizAttemptRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_attempt_items.id ASC")
		}).
		Preload("Items.Question").
		Where("user_id = ?", userID).
		First(&attempt, id).Error
	return &attempt, err
}

func (r *quizAttemptRepository) FindByIDWithDetails(ctx context.Context, id, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.WithContext(ctx).
		Preload("Law", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_attempt_items.id ASC")
		}).
		// Content retired after the attempt started still belongs to the report.
		Preload("Items.Question", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ?", userID).
		First(&attempt, id).Error
	return &attempt, err
}

func (r *quizAttemptRepository) UpdateItemAnswer(ctx context.Context, item *model.QuizAttemptItem) (bool, error) {
	db := r.db.WithContext(ctx)
	open := db.Model(&model.QuizAttempt{}).
		Select("id").
		Where("id = ? AND status = ?", item.QuizAttemptID, model.AttemptStatusInProgress)

	res := db.Model(&model.QuizAttemptItem{}).
		Where("id = ? AND quiz_attempt_id IN (?)", item.ID, open).
		Updates(map[string]interface{}{"answer": item.Answer, "answered_at": item.AnsweredAt})
	return res.RowsAffected > 0, res.Error
}

func (r *quizAttemptRepository) MarkFinished(ctx context.Context, attempt *model.QuizAttempt, at time.Time) error {
	attempt.Status = model.AttemptStatusFinished
	attempt.FinishedAt = &at
	return r.db.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("id = ?", attempt.ID).
		Updates(map[string]interface{}{"status": attempt.Status, "finished_at": attempt.FinishedAt}).Error
}
