package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/ecommerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/ecommerce/internal/core/domain"
	"github.com/rafaelleal24/ecommerce/internal/core/dto"
	"github.com/rafaelleal24/ecommerce/internal/core/service"
	"github.com/rafaelleal24/ecommerce/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID          int64   `json:"id" example:"1"`
	Title       string  `json:"title" example:"Mug"`
	Price       float64 `json:"price" example:"9.99"`
	Description string  `json:"description" example:"Ceramic mug"`
	Image       string  `json:"image" example:"mug.png"`
}

type UpdateProductResponse struct {
	Status  string          `json:"status" example:"updated"`
	Product ProductResponse `json:"product"`
}

type DeleteProductResponse struct {
	Status string `json:"status" example:"deleted"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          int64(product.ID),
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
	}
}

const msgInvalidBody = "invalid request body"

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetAll godoc
// @Summary     List all products
// @Description Returns every product in storage order
// @Tags        products
// @Produce     json
// @Success     200 {array}  ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /product [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.productService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a product; title, price, image and description must all be present
// @Tags        products
// @Accept      json
// @Param       request body dto.CreateProductRequest true "Product data"
// @Success     200
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /product [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		_ = c.Error(err)
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(msgInvalidBody))
		return
	}
	if _, err := pc.productService.CreateProduct(c.Request.Context(), &request); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Applies only the fields present in the body
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                      true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Fields to change"
// @Success     200     {object} UpdateProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /product/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Product not found"))
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		// a missing product wins over a bad body
		if existsErr := pc.productService.EnsureProductExists(c.Request.Context(), id); existsErr != nil {
			handlers.HandleError(c, existsErr)
			return
		}
		_ = c.Error(err)
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(msgInvalidBody))
		return
	}
	product, err := pc.productService.UpdateProduct(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateProductResponse{Status: "updated", Product: NewProductResponse(product)})
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} DeleteProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /product/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Product Not found"))
		return
	}
	if err := pc.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteProductResponse{Status: "deleted"})
}
