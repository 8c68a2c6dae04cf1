package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"doceencanto/internal/cart"
)

const (
	sessionCookie    = "doce_encanto_session"
	sessionMaxAge    = 30 * 24 * 60 * 60
	sessionContextID = "session_id"
)

// sessionMiddleware assigns every visitor a stable session id cookie. The
// cart and the checkout session are scoped to it and survive navigation and
// reloads.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextID, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextID)
}

// cartStore returns the request session's cart.
func (s *Server) cartStore(c *gin.Context) *cart.Store {
	return s.carts.Store(sessionID(c))
}
