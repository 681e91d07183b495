package repository

import (
	"context"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
)

// LawWithQuestionCount is a catalogue row: an active law and how many of its
// questions can currently be drawn into an attempt.
type LawWithQuestionCount struct {
	ID            uint
	Name          string
	SubjectID     uint
	SubjectName   string
	QuestionCount int
}

type LawRepository interface {
	Create(ctx context.Context, law *model.Law) error
	FindActiveByID(ctx context.Context, id uint) (*model.Law, error)
	FindByIDWithContent(ctx context.Context, id uint) (*model.Law, error)
	FindAllActiveWithQuestionCount(ctx context.Context) ([]LawWithQuestionCount, error)
}

type lawRepository struct {
	db *gorm.DB
}

func NewLawRepository(db *gorm.DB) LawRepository {
	return &lawRepository{db: db}
}

func (r *lawRepository) Create(ctx context.Context, law *model.Law) error {
	// Titles, chapters and questions nested in law are created with it.
	return r.db.WithContext(ctx).Create(law).Error
}

func (r *lawRepository) FindActiveByID(ctx context.Context, id uint) (*model.Law, error) {
	var law model.Law
	err := r.db.WithContext(ctx).Where("active = ?", true).First(&law, id).Error
	return &law, err
}

func (r *lawRepository) FindByIDWithContent(ctx context.Context, id uint) (*model.Law, error) {
	var law model.Law
	err := r.db.WithContext(ctx).
		Preload("Titles", func(db *gorm.DB) *gorm.DB { return db.Order("titles.id ASC") }).
		Preload("Titles.Chapters", func(db *gorm.DB) *gorm.DB { return db.Order("chapters.id ASC") }).
		Preload("Titles.Chapters.Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.id ASC") }).
		First(&law, id).Error
	return &law, err
}

func (r *lawRepository) FindAllActiveWithQuestionCount(ctx context.Context) ([]LawWithQuestionCount, error) {
	var results []LawWithQuestionCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT laws.id, laws.name, laws.subject_id, subjects.name AS subject_name,
			(SELECT COUNT(*)`+eligibleQuestionJoin+` AND l.id = laws.id) AS question_count
		FROM laws
		JOIN subjects ON subjects.id = laws.subject_id
		WHERE laws.active = @active AND subjects.active = @active
		  AND laws.deleted_at IS NULL AND subjects.deleted_at IS NULL
		ORDER BY subjects.name ASC, laws.name ASC`,
		map[string]interface{}{"active": true},
	).Scan(&results).Error
	return results, err
}
