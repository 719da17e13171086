package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcatalog/internal/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "two decimals", raw: "15000.00", want: "15000.00"},
		{name: "integer", raw: "15000", want: "15000.00"},
		{name: "zero", raw: "0", want: "0.00"},
		{name: "negative", raw: "-5.00", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, msg := ParsePrice(tt.raw)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
				return
			}
			require.Empty(t, msg)
			assert.Equal(t, tt.want, d.StringFixed(2))
		})
	}
}

func TestNewProductResponseShape(t *testing.T) {
	p := models.Product{
		Title:      "Гитара",
		CategoryID: 3,
		Category:   models.Category{Title: "Инструменты"},
		Price:      decimal.RequireFromString("15000.00"),
		Stock:      5,
	}
	p.Category.ID = 3

	resp := NewProductResponse(p)
	assert.Equal(t, "15000.00", resp.Price)
	assert.Equal(t, uint(3), resp.Category.ID)
	assert.Equal(t, "Инструменты", resp.Category.Title)
	// пустой список картинок сериализуется как [], не null
	assert.NotNil(t, resp.Images)
	assert.Len(t, resp.Images, 0)
}

func TestCategoryPatchFields(t *testing.T) {
	assert.Empty(t, CategoryPatch{}.Fields())

	title := "Новая музыка"
	fields := CategoryPatch{Title: &title}.Fields()
	assert.Equal(t, map[string]any{"title": "Новая музыка"}, fields)
}
