package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"shopcatalog/internal/dto"
	"shopcatalog/internal/models"
	"shopcatalog/internal/store"
)

func (h *Handler) register(c *gin.Context) {
	var in dto.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}

	taken, err := h.stores.Users.UsernameTaken(c.Request.Context(), in.Username)
	if err != nil {
		h.fail(c, err)
		return
	}
	if taken {
		badRequest(c, dto.FieldErrors{"username": "a user with that username already exists"})
		return
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	u := models.User{Username: in.Username, Email: in.Email, PasswordHash: hash}
	if err := h.stores.Users.Create(c.Request.Context(), &u); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var in dto.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, dto.FromBinding(err))
		return
	}

	// одинаковый ответ для неизвестного логина и неверного пароля
	u, err := h.stores.Users.GetByUsername(c.Request.Context(), in.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			unauthorized(c, "invalid username or password")
			return
		}
		h.fail(c, err)
		return
	}
	if !models.CheckPassword(u.PasswordHash, in.Password) {
		unauthorized(c, "invalid username or password")
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUserKey, u.ID)
	if err := sess.Save(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// logout идемпотентен: повторный выход — не ошибка
func (h *Handler) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) profile(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, dto.ProfileResponse{
		Username: u.Username,
		Email:    u.Email,
	})
}
