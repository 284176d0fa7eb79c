package model

import "github.com/rafaelleal24/ecommerce/internal/core/domain"

type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title"`
	Price       float64 `gorm:"column:price"`
	Description string  `gorm:"column:description"`
	Image       string  `gorm:"column:image"`
}

func (Product) TableName() string {
	return "product"
}

func (p *Product) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ID(p.ID),
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}

func ToProductModel(p *domain.Product) *Product {
	return &Product{
		ID:          int64(p.ID),
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}

// ProductChanges maps the supplied patch fields to column assignments.
func ProductChanges(patch domain.ProductPatch) map[string]any {
	changes := make(map[string]any, 4)
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Image != nil {
		changes["image"] = *patch.Image
	}
	return changes
}
