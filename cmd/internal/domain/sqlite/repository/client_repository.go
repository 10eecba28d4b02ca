package repository

import (
	"context"
	"errors"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

// FindAll lists clients by name. A non-empty search matches the legal name,
// trade name or either tax ID.
func (r *DefaultClientRepository) FindAll(ctx context.Context, search string) ([]*entity.Client, error) {
	var clients []*entity.Client
	query := r.db.WithContext(ctx).Order("razao_social ASC")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("razao_social LIKE ? OR nome_fantasia LIKE ? OR cnpj LIKE ? OR cpf LIKE ?", like, like, like, like)
	}

	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *DefaultClientRepository) FindByID(ctx context.Context, id int64) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *DefaultClientRepository) Save(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *DefaultClientRepository) Delete(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Delete(client).Error
}

// CountContracts reports how many contracts reference the client.
func (r *DefaultClientRepository) CountContracts(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Contract{}).
		Where("cliente_id = ?", id).
		Count(&n).Error
	return n, err
}
