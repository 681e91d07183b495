package repository

import (
	"context"
	"errors"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	// NotifyEmail returns the configured notification address, nil when unset.
	NotifyEmail(ctx context.Context) (*string, error)
	SetNotifyEmail(ctx context.Context, email *string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) NotifyEmail(ctx context.Context) (*string, error) {
	var setting model.Setting
	err := r.db.WithContext(ctx).First(&setting, model.SettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return setting.NotifyEmail, nil
}

func (r *settingRepository) SetNotifyEmail(ctx context.Context, email *string) error {
	setting := model.Setting{ID: model.SettingID, NotifyEmail: email}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"notify_email", "updated_at"}),
	}).Create(&setting).Error
}
