package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopcatalog/internal/dto"
	"shopcatalog/internal/models"
)

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.stores.Categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(cats))
}

func (h *Handler) createCategory(c *gin.Context) {
	var in dto.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}
	cat := models.Category{Title: in.Title}
	if err := h.stores.Categories.Create(c.Request.Context(), &cat); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(cat))
}

func (h *Handler) getCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.stores.Categories.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

func (h *Handler) patchCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in dto.CategoryPatch
	// PATCH с пустым телом — это пустой patch, не ошибка
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, dto.FromBinding(err))
		return
	}
	if in.Title != nil && *in.Title == "" {
		badRequest(c, dto.FieldErrors{"title": "this field may not be blank"})
		return
	}
	cat, err := h.stores.Categories.Update(c.Request.Context(), id, in.Fields())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

func (h *Handler) putCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in dto.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}
	cat, err := h.stores.Categories.Update(c.Request.Context(), id, map[string]any{"title": in.Title})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	paths, err := h.stores.Categories.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.removeBlobs(paths)
	c.Status(http.StatusNoContent)
}

// removeBlobs deletes image files after their rows are gone. The DB row
// is the source of truth, so a leftover file is only worth a warning.
func (h *Handler) removeBlobs(paths []string) {
	for _, p := range paths {
		if err := h.files.Remove(p); err != nil {
			h.log.Warn().Err(err).Str("path", p).Msg("remove blob")
		}
	}
}
