package repository

import (
	"context"
	"errors"

	"metrocontratos/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// ContractFilter narrows FindAll. Zero fields are ignored.
type ContractFilter struct {
	Status   entity.ContractStatus
	Type     entity.ContractType
	ClientID int64
}

type DefaultContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *DefaultContractRepository {
	return &DefaultContractRepository{db: db}
}

func (r *DefaultContractRepository) FindAll(ctx context.Context, filter ContractFilter) ([]*entity.Contract, error) {
	query := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("tipo_contrato = ?", filter.Type)
	}
	if filter.ClientID != 0 {
		query = query.Where("cliente_id = ?", filter.ClientID)
	}

	var contracts []*entity.Contract
	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByID loads the contract with its client.
func (r *DefaultContractRepository) FindByID(ctx context.Context, id int64) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&contract, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *DefaultContractRepository) ExistsByNumber(ctx context.Context, number string, exceptID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Contract{}).
		Where("numero_contrato = ? AND id <> ?", number, exceptID).
		Count(&n).Error
	return n > 0, err
}

// Save writes the contract row only; the preloaded client is left untouched.
func (r *DefaultContractRepository) Save(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Omit("Client").Save(contract).Error
}

func (r *DefaultContractRepository) Delete(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Delete(&entity.Contract{}, contract.ID).Error
}

func (r *DefaultContractRepository) UpdatePDFURL(ctx context.Context, id int64, url string, updatedAt int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.Contract{}).
		Where("id = ?", id).
		Updates(map[string]any{"pdf_url": url, "updated_at": updatedAt}).Error
}
