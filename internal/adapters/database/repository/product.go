package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafaelleal24/ecommerce/internal/adapters/database/model"
	"github.com/rafaelleal24/ecommerce/internal/core/domain"
	"github.com/rafaelleal24/ecommerce/internal/core/port"
	"github.com/rafaelleal24/ecommerce/internal/core/serviceerrors"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) port.ProductPort {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	row := model.ToProductModel(product)
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(row.ID)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	var row model.Product
	if err := r.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return nil, parseError(err)
	}
	return row.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	var rows []model.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, parseError(err)
	}

	products := make([]*domain.Product, len(rows))
	for i := range rows {
		products[i] = rows[i].ToDomain()
	}
	return products, nil
}

// Update writes only the columns present in patch, then reads the row back.
// An empty patch is a plain lookup.
func (r *ProductRepository) Update(ctx context.Context, id domain.ID, patch domain.ProductPatch) (*domain.Product, error) {
	changes := model.ProductChanges(patch)
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", int64(id)).
		Updates(changes)
	if result.Error != nil {
		return nil, parseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, serviceerrors.NewNotFoundError("entity not found")
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, int64(id))
	if result.Error != nil {
		return parseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	return nil
}
