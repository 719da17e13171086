// Package dto defines the wire schemas: one input shape per write
// operation and one response shape per entity. Inputs and responses are
// deliberately separate types — a product accepts a bare category_id on
// write but returns the embedded category object on read.
package dto

import (
	"time"

	"shopcatalog/internal/models"
)

// CategoryInput — тело POST/PUT /categories
type CategoryInput struct {
	Title string `json:"title" binding:"required"`
}

// CategoryPatch carries the optional fields of a partial update.
// nil means "not supplied", which is distinct from the zero value.
type CategoryPatch struct {
	Title *string `json:"title"`
}

// Fields returns the column→value map for a store update.
func (p CategoryPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	return fields
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCategoryList(cats []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
