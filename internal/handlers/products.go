package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopcatalog/internal/dto"
	"shopcatalog/internal/models"
)

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.stores.Products.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductList(products))
}

func (h *Handler) createProduct(c *gin.Context) {
	var in dto.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}

	errs := dto.FieldErrors{}
	price, msg := dto.ParsePrice(in.Price)
	if msg != "" {
		errs.Add("price", msg)
	}
	ok, err := h.stores.Categories.Exists(c.Request.Context(), in.CategoryID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		errs.Add("category_id", "category does not exist")
	}
	if !errs.Empty() {
		badRequest(c, errs)
		return
	}

	p := models.Product{
		Title:           in.Title,
		CategoryID:      in.CategoryID,
		Description:     in.Description,
		Characteristics: in.Characteristics,
		Price:           price,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if err := h.stores.Products.Create(c.Request.Context(), &p); err != nil {
		h.fail(c, err)
		return
	}

	// перечитываем с категорией и картинками для ответа
	p, err = h.stores.Products.Get(c.Request.Context(), p.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(p))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.stores.Products.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *Handler) patchProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in dto.ProductPatch
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, dto.FromBinding(err))
		return
	}

	errs := dto.FieldErrors{}
	fields := map[string]any{}
	if in.Title != nil {
		if *in.Title == "" {
			errs.Add("title", "this field may not be blank")
		} else {
			fields["title"] = *in.Title
		}
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Characteristics != nil {
		fields["characteristics"] = *in.Characteristics
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	if in.Price != nil {
		price, msg := dto.ParsePrice(*in.Price)
		if msg != "" {
			errs.Add("price", msg)
		} else {
			fields["price"] = price
		}
	}
	if in.CategoryID != nil {
		ok, err := h.stores.Categories.Exists(c.Request.Context(), *in.CategoryID)
		if err != nil {
			h.fail(c, err)
			return
		}
		if !ok {
			errs.Add("category_id", "category does not exist")
		} else {
			fields["category_id"] = *in.CategoryID
		}
	}
	if !errs.Empty() {
		badRequest(c, errs)
		return
	}

	p, err := h.stores.Products.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *Handler) putProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in dto.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}

	errs := dto.FieldErrors{}
	price, msg := dto.ParsePrice(in.Price)
	if msg != "" {
		errs.Add("price", msg)
	}
	ok2, err := h.stores.Categories.Exists(c.Request.Context(), in.CategoryID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok2 {
		errs.Add("category_id", "category does not exist")
	}
	if !errs.Empty() {
		badRequest(c, errs)
		return
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	fields := map[string]any{
		"title":           in.Title,
		"category_id":     in.CategoryID,
		"description":     in.Description,
		"characteristics": in.Characteristics,
		"price":           price,
		"stock":           stock,
	}
	p, err := h.stores.Products.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	paths, err := h.stores.Products.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.removeBlobs(paths)
	c.Status(http.StatusNoContent)
}
