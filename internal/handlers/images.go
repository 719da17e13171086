package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopcatalog/internal/dto"
	"shopcatalog/internal/models"
	"shopcatalog/internal/uploads"
)

func (h *Handler) listImages(c *gin.Context) {
	images, err := h.stores.Images.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewImageList(images))
}

// createImage принимает multipart: поле product (id) + файл image
func (h *Handler) createImage(c *gin.Context) {
	errs := dto.FieldErrors{}

	productID, err := strconv.ParseUint(c.PostForm("product"), 10, 32)
	if err != nil {
		errs.Add("product", "a valid product id is required")
	} else {
		ok, err := h.stores.Products.Exists(c.Request.Context(), uint(productID))
		if err != nil {
			h.fail(c, err)
			return
		}
		if !ok {
			errs.Add("product", "product does not exist")
		}
	}

	file, err := c.FormFile("image")
	if err != nil {
		errs.Add("image", "no file was submitted")
	}
	if !errs.Empty() {
		badRequest(c, errs)
		return
	}

	path, ok := h.saveUpload(c, file)
	if !ok {
		return
	}
	im := models.ProductImage{ProductID: uint(productID), Image: path}
	if err := h.stores.Images.Create(c.Request.Context(), &im); err != nil {
		h.removeBlobs([]string{path})
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewImageResponse(im))
}

func (h *Handler) getImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	im, err := h.stores.Images.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewImageResponse(im))
}

// patchImage заменяет blob: старый файл удаляется после обновления строки
func (h *Handler) patchImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, dto.FieldErrors{"image": "no file was submitted"})
		return
	}

	path, ok := h.saveUpload(c, file)
	if !ok {
		return
	}
	im, old, err := h.stores.Images.Replace(c.Request.Context(), id, path)
	if err != nil {
		h.removeBlobs([]string{path})
		h.fail(c, err)
		return
	}
	h.removeBlobs([]string{old})
	c.JSON(http.StatusOK, dto.NewImageResponse(im))
}

func (h *Handler) deleteImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.stores.Images.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.removeBlobs([]string{path})
	c.Status(http.StatusNoContent)
}

// saveUpload writes the uploaded file through the blob store and turns
// a bad extension into a field error. On failure the response is
// already written.
func (h *Handler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, bool) {
	src, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return "", false
	}
	defer src.Close()

	path, err := h.files.Save(file.Filename, src)
	if err != nil {
		if errors.Is(err, uploads.ErrUnsupportedFormat) {
			badRequest(c, dto.FieldErrors{"image": "unsupported image format"})
			return "", false
		}
		h.fail(c, err)
		return "", false
	}
	return path, true
}
