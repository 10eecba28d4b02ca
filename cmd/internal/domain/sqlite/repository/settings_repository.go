package repository

import (
	"context"
	"errors"

	"metrocontratos/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{db: db}
}

// FindFirst returns the configuration row with the lowest id. Extra rows are
// ignored.
func (r *DefaultSettingsRepository) FindFirst(ctx context.Context) (*entity.CompanySettings, error) {
	var settings entity.CompanySettings
	err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&settings).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *DefaultSettingsRepository) Save(ctx context.Context, settings *entity.CompanySettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
