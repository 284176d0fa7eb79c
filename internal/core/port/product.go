package port

import (
	"context"

	"github.com/rafaelleal24/ecommerce/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id domain.ID, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id domain.ID) error
}
