package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"shopcatalog/internal/models"
)

const sessionUserKey = "user_id"

// currentUserKey — ключ в gin-контексте после requireLogin
const currentUserKey = "currentUser"

// requireLogin resolves the session to a user once per request and
// aborts with 401 when there is no valid session.
func (h *Handler) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, ok := sess.Get(sessionUserKey).(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		u, err := h.stores.Users.Get(c.Request.Context(), uid)
		if err != nil {
			// сессия указывает на удалённого пользователя
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		c.Set(currentUserKey, &u)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	u, _ := c.Get(currentUserKey)
	user, _ := u.(*models.User)
	return user
}

// RequestLogger emits one structured log line per request.
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Send()
	}
}
