package domain

import "time"

type Product struct {
	ID          ID
	Title       string
	Price       float64
	Description string
	Image       string
}

func NewProduct(title string, price float64, description string, image string) *Product {
	return &Product{
		Title:       title,
		Price:       price,
		Description: description,
		Image:       image,
	}
}

// ProductPatch holds the fields supplied by a partial update. A nil field is
// left untouched.
type ProductPatch struct {
	Title       *string
	Price       *float64
	Description *string
	Image       *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Price == nil && p.Description == nil && p.Image == nil
}

const (
	ProductCreatedEvent = "product.created"
	ProductUpdatedEvent = "product.updated"
	ProductDeletedEvent = "product.deleted"
)

type ProductSnapshot struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type ProductEvent struct {
	Name       string          `json:"name"`
	Product    ProductSnapshot `json:"product"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e *ProductEvent) GetName() string {
	return e.Name
}

func (e *ProductEvent) GetEntityName() string {
	return "product"
}

func NewProductEvent(name string, product *Product) *ProductEvent {
	return &ProductEvent{
		Name: name,
		Product: ProductSnapshot{
			ID:          product.ID,
			Title:       product.Title,
			Price:       product.Price,
			Description: product.Description,
			Image:       product.Image,
		},
		OccurredAt: time.Now().UTC(),
	}
}
