package repository

import (
	"context"
	"errors"

	"metrocontratos/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultCompanyRepository caches public registry lookups.
type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.RegistryCompany, error) {
	var company entity.RegistryCompany
	err := r.db.WithContext(ctx).
		Where("cnpj = ?", cnpj).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) Save(ctx context.Context, company *entity.RegistryCompany) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// DeleteExpired removes cache rows older than before (epoch millis) and
// reports how many were removed.
func (r *DefaultCompanyRepository) DeleteExpired(ctx context.Context, before int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("cached_at < ?", before).
		Delete(&entity.RegistryCompany{})
	return res.RowsAffected, res.Error
}
