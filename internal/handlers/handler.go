// Package handlers wires the HTTP surface: one CRUD group per catalog
// entity plus registration and session auth.
package handlers

import (
	"github.com/gin-gonic/gin"

	"shopcatalog/internal/logger"
	"shopcatalog/internal/store"
	"shopcatalog/internal/uploads"
)

// Policy — требование аутентификации для группы маршрутов
type Policy int

const (
	Public Policy = iota
	Authenticated
)

// Access policy per endpoint group. The catalog is public for now;
// flipping a value here is all it takes to put a resource behind login.
var (
	categoriesPolicy = Public
	productsPolicy   = Public
	imagesPolicy     = Public
	profilePolicy    = Authenticated
)

type Handler struct {
	stores *store.Stores
	files  uploads.Store
	log    *logger.Logger
}

func New(stores *store.Stores, files uploads.Store, log *logger.Logger) *Handler {
	return &Handler{stores: stores, files: files, log: log}
}

func (h *Handler) guard(p Policy) []gin.HandlerFunc {
	if p == Authenticated {
		return []gin.HandlerFunc{h.requireLogin()}
	}
	return nil
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r *gin.Engine) {
	cats := r.Group("/categories", h.guard(categoriesPolicy)...)
	cats.GET("", h.listCategories)
	cats.POST("", h.createCategory)
	cats.GET("/:id", h.getCategory)
	cats.PATCH("/:id", h.patchCategory)
	cats.PUT("/:id", h.putCategory)
	cats.DELETE("/:id", h.deleteCategory)

	products := r.Group("/products", h.guard(productsPolicy)...)
	products.GET("", h.listProducts)
	products.POST("", h.createProduct)
	products.GET("/:id", h.getProduct)
	products.PATCH("/:id", h.patchProduct)
	products.PUT("/:id", h.putProduct)
	products.DELETE("/:id", h.deleteProduct)

	images := r.Group("/product-images", h.guard(imagesPolicy)...)
	images.GET("", h.listImages)
	images.POST("", h.createImage)
	images.GET("/:id", h.getImage)
	images.PATCH("/:id", h.patchImage)
	images.DELETE("/:id", h.deleteImage)

	auth := r.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)

	profile := r.Group("/profile", h.guard(profilePolicy)...)
	profile.GET("", h.profile)
}
