package repository

import (
	"context"
	"fmt"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
)

// ContentKind names a level of the classification chain.
type ContentKind string

const (
	KindSubject  ContentKind = "subject"
	KindLaw      ContentKind = "law"
	KindTitle    ContentKind = "title"
	KindChapter  ContentKind = "chapter"
	KindQuestion ContentKind = "question"
)

func (k ContentKind) model() (interface{}, error) {
	switch k {
	case KindSubject:
		return &model.Subject{}, nil
	case KindLaw:
		return &model.Law{}, nil
	case KindTitle:
		return &model.Title{}, nil
	case KindChapter:
		return &model.Chapter{}, nil
	case KindQuestion:
		return &model.Question{}, nil
	}
	return nil, fmt.Errorf("unknown content kind %q", string(k))
}

type ContentRepository interface {
	CreateSubject(ctx context.Context, subject *model.Subject) error
	FindSubjectByID(ctx context.Context, id uint) (*model.Subject, error)
	// SetActive toggles one node of the chain. It returns gorm.ErrRecordNotFound
	// when no row matched.
	SetActive(ctx context.Context, kind ContentKind, id uint, active bool) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreateSubject(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *contentRepository) FindSubjectByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).First(&subject, id).Error
	return &subject, err
}

func (r *contentRepository) SetActive(ctx context.Context, kind ContentKind, id uint, active bool) error {
	m, err := kind.model()
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(m).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
