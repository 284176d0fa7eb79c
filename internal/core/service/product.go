package service

import (
	"context"

	"github.com/rafaelleal24/ecommerce/internal/core/domain"
	"github.com/rafaelleal24/ecommerce/internal/core/dto"
	"github.com/rafaelleal24/ecommerce/internal/core/logger"
	"github.com/rafaelleal24/ecommerce/internal/core/port"
	"github.com/rafaelleal24/ecommerce/internal/core/serviceerrors"
)

// Client-facing messages. The two casings differ on purpose: existing
// clients match on them verbatim.
const (
	msgUpdateNotFound = "Product not found"
	msgDeleteNotFound = "Product Not found"
)

type ProductService struct {
	productRepository port.ProductPort
	broker            port.BrokerPort
}

func NewProductService(productRepository port.ProductPort, broker port.BrokerPort) *ProductService {
	return &ProductService{productRepository: productRepository, broker: broker}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(deref(request.Title), derefFloat(request.Price), deref(request.Description), deref(request.Image))

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"title": product.Title,
			"price": product.Price,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": int64(product.ID)})
	s.publish(ctx, domain.NewProductEvent(domain.ProductCreatedEvent, product))
	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	patch := domain.ProductPatch{
		Title:       request.Title,
		Price:       request.Price,
		Description: request.Description,
		Image:       request.Image,
	}

	product, err := s.productRepository.Update(ctx, id, patch)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError(msgUpdateNotFound)
		}
		logger.Error(ctx, "product: update failed", err, map[string]any{"product_id": int64(id)})
		return nil, err
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": int64(id), "empty_patch": patch.IsEmpty()})
	if !patch.IsEmpty() {
		s.publish(ctx, domain.NewProductEvent(domain.ProductUpdatedEvent, product))
	}
	return product, nil
}

// EnsureProductExists reports NotFound, with the update route's message, when
// id has no row.
func (s *ProductService) EnsureProductExists(ctx context.Context, id domain.ID) error {
	if _, err := s.productRepository.GetByID(ctx, id); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewNotFoundError(msgUpdateNotFound)
		}
		return err
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewNotFoundError(msgDeleteNotFound)
		}
		logger.Error(ctx, "product: delete failed", err, map[string]any{"product_id": int64(id)})
		return err
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": int64(id)})
	s.publish(ctx, domain.NewProductEvent(domain.ProductDeletedEvent, &domain.Product{ID: id}))
	return nil
}

// publish never fails the caller: by the time it runs the row is committed.
func (s *ProductService) publish(ctx context.Context, event *domain.ProductEvent) {
	if err := s.broker.Publish(ctx, event); err != nil {
		logger.Warn(ctx, "product: event publish failed", map[string]any{
			"event_name": event.GetName(),
			"product_id": int64(event.Product.ID),
			"error":      err.Error(),
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
