package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopcatalog/internal/dto"
	"shopcatalog/internal/store"
)

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": msg})
}

func badRequest(c *gin.Context, errs dto.FieldErrors) {
	c.JSON(http.StatusBadRequest, errs)
}

// fail maps a store error to a response. Anything that is not a
// NotFound is logged and surfaced as an opaque 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		notFound(c)
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// idParam parses the :id path segment. A malformed id is reported as
// NotFound, same as an id that matches no row.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}
