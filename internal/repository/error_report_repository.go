package repository

import (
	"context"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
)

type ErrorReportRepository interface {
	Create(ctx context.Context, report *model.ErrorReport) error
	MarkNotified(ctx context.Context, id uint) error
	FindAllByQuestion(ctx context.Context, questionID uint) ([]model.ErrorReport, error)
}

type errorReportRepository struct {
	db *gorm.DB
}

func NewErrorReportRepository(db *gorm.DB) ErrorReportRepository {
	return &errorReportRepository{db: db}
}

func (r *errorReportRepository) Create(ctx context.Context, report *model.ErrorReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *errorReportRepository) MarkNotified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.ErrorReport{}).Where("id = ?", id).Update("notified", true).Error
}

func (r *errorReportRepository) FindAllByQuestion(ctx context.Context, questionID uint) ([]model.ErrorReport, error) {
	var reports []model.ErrorReport
	err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}
