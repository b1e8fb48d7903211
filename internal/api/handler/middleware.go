package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
)

const principalKey = "principal"

// SessionMiddleware resolves the session cookie into a request-scoped
// Principal. Requests without a valid session pass through anonymous; the
// role gates below decide what needs authentication.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.SessionCookieName)
		if err == nil && token != "" {
			if sess, err := h.Sessions.Resolve(token); err == nil {
				c.Set(principalKey, sess.Principal)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries any valid
// session.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := principalFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireRole aborts unless the session principal holds the given role.
func (h *Handler) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		if p.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
