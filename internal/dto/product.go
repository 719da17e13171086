package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shopcatalog/internal/models"
)

// ProductInput — тело POST/PUT /products. The category is referenced by
// id here; the response embeds the full object instead.
type ProductInput struct {
	Title           string `json:"title" binding:"required"`
	CategoryID      uint   `json:"category_id" binding:"required"`
	Description     string `json:"description"`
	Characteristics string `json:"characteristics"`
	Price           string `json:"price" binding:"required"`
	Stock           *int   `json:"stock" binding:"omitempty,gte=0"`
}

// ProductPatch — частичное обновление, все поля опциональны
type ProductPatch struct {
	Title           *string `json:"title"`
	CategoryID      *uint   `json:"category_id"`
	Description     *string `json:"description"`
	Characteristics *string `json:"characteristics"`
	Price           *string `json:"price"`
	Stock           *int    `json:"stock" binding:"omitempty,gte=0"`
}

// ParsePrice validates a price string: a well-formed non-negative
// decimal. The message matches the other field error messages.
func ParsePrice(raw string) (decimal.Decimal, string) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, "a valid number is required"
	}
	if d.IsNegative() {
		return decimal.Decimal{}, "ensure this value is greater than or equal to 0"
	}
	return d, ""
}

type ProductResponse struct {
	ID              uint             `json:"id"`
	Title           string           `json:"title"`
	Category        CategoryResponse `json:"category"`
	Description     string           `json:"description"`
	Characteristics string           `json:"characteristics"`
	Price           string           `json:"price"`
	Stock           int              `json:"stock"`
	Images          []ImageResponse  `json:"images"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// NewProductResponse expects p loaded with its Category and Images.
func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Title:           p.Title,
		Category:        NewCategoryResponse(p.Category),
		Description:     p.Description,
		Characteristics: p.Characteristics,
		Price:           p.Price.StringFixed(2),
		Stock:           p.Stock,
		Images:          NewImageList(p.Images),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewProductList(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
