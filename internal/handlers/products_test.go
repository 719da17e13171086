package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productBody struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	} `json:"category"`
	Description     string `json:"description"`
	Characteristics string `json:"characteristics"`
	Price           string `json:"price"`
	Stock           int    `json:"stock"`
	Images          []struct {
		ID      uint   `json:"id"`
		Image   string `json:"image"`
		Product uint   `json:"product"`
	} `json:"images"`
}

func TestProductCRUD(t *testing.T) {
	env := newTestEnv(t)
	catID := env.createCategory(t, "Инструменты")

	// CREATE
	w := env.doJSON(t, http.MethodPost, "/products", gin.H{
		"title":           "Гитара",
		"category_id":     catID,
		"description":     "Акустическая гитара",
		"characteristics": "Дерево, 6 струн",
		"price":           "15000.00",
		"stock":           5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p productBody
	decodeInto(t, w, &p)
	assert.Equal(t, "Гитара", p.Title)
	assert.Equal(t, "15000.00", p.Price)
	assert.Equal(t, 5, p.Stock)
	// на чтение — вложенный объект категории, не голый id
	assert.Equal(t, catID, p.Category.ID)
	assert.Equal(t, "Инструменты", p.Category.Title)
	assert.NotNil(t, p.Images)
	assert.Len(t, p.Images, 0)

	// LIST
	w = env.doJSON(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []productBody
	decodeInto(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	// PATCH цены — формат сохраняется на следующем чтении
	w = env.doJSON(t, http.MethodPatch, fmt.Sprintf("/products/%d", p.ID), gin.H{"price": "14000.00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var patched productBody
	decodeInto(t, w, &patched)
	assert.Equal(t, "14000.00", patched.Price)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got productBody
	decodeInto(t, w, &got)
	assert.Equal(t, "14000.00", got.Price)
	assert.Equal(t, "Гитара", got.Title)

	// PUT — полная замена
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), gin.H{
		"title":       "Электрогитара",
		"category_id": catID,
		"price":       "30000.00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var replaced productBody
	decodeInto(t, w, &replaced)
	assert.Equal(t, "Электрогитара", replaced.Title)
	assert.Equal(t, "30000.00", replaced.Price)
	assert.Equal(t, 0, replaced.Stock)
	assert.Equal(t, "", replaced.Description)

	// DELETE
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/products", gin.H{
		"title":       "Гитара",
		"category_id": 777,
		"price":       "15000.00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errs map[string]string
	decodeInto(t, w, &errs)
	assert.Contains(t, errs, "category_id")

	// строка не должна была появиться
	w = env.doJSON(t, http.MethodGet, "/products", nil)
	var list []productBody
	decodeInto(t, w, &list)
	assert.Len(t, list, 0)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	catID := env.createCategory(t, "Инструменты")

	tests := []struct {
		name  string
		body  gin.H
		field string
	}{
		{
			name:  "missing title",
			body:  gin.H{"category_id": catID, "price": "10.00"},
			field: "title",
		},
		{
			name:  "missing price",
			body:  gin.H{"title": "Гитара", "category_id": catID},
			field: "price",
		},
		{
			name:  "malformed price",
			body:  gin.H{"title": "Гитара", "category_id": catID, "price": "abc"},
			field: "price",
		},
		{
			name:  "negative price",
			body:  gin.H{"title": "Гитара", "category_id": catID, "price": "-5.00"},
			field: "price",
		},
		{
			name:  "negative stock",
			body:  gin.H{"title": "Гитара", "category_id": catID, "price": "10.00", "stock": -1},
			field: "stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.doJSON(t, http.MethodPost, "/products", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var errs map[string]string
			decodeInto(t, w, &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestPatchProductUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	catID := env.createCategory(t, "Инструменты")
	prodID := env.createProduct(t, "Гитара", catID, "15000.00")

	w := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/products/%d", prodID), gin.H{"category_id": 999})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errs map[string]string
	decodeInto(t, w, &errs)
	assert.Contains(t, errs, "category_id")
}
