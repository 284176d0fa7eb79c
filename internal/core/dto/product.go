package dto

// CreateProductRequest requires every field to be present. Pointers let an
// empty string or a zero price through while still rejecting omitted keys.
type CreateProductRequest struct {
	Title       *string  `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Image       *string  `json:"image" binding:"required"`
	Description *string  `json:"description" binding:"required"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}
