// Package api is the HTTP boundary of the storefront: catalog views, the
// session cart, the checkout session and the WhatsApp handoff.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doceencanto/internal/cart"
	"doceencanto/internal/config"
	"doceencanto/internal/contact"
	"doceencanto/internal/monitoring"
	"doceencanto/internal/storage"
)

// Server wires the storefront together and owns the router.
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	carts   *cart.Manager
	store   *storage.Store
	relay   *contact.Client
	monitor *monitoring.Monitor
}

// NewServer creates the storefront server.
func NewServer(cfg *config.Config, store *storage.Store, relay *contact.Client, monitor *monitoring.Monitor) *Server {
	s := &Server{
		router:  gin.Default(),
		cfg:     cfg,
		carts:   cart.NewManager(cart.NewStorageRepository(store)),
		store:   store,
		relay:   relay,
		monitor: monitor,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Doce Encanto API is running"})
	})

	v1 := s.router.Group("/api/v1")
	v1.Use(s.sessionMiddleware())
	{
		// Catalog
		v1.GET("/products", s.ListProducts)
		v1.GET("/products/:id", s.GetProduct)
		v1.GET("/categories", s.ListCategories)
		v1.GET("/sort-options", s.ListSortOptions)

		// Cart
		v1.GET("/cart", s.GetCart)
		v1.POST("/cart/items", s.AddCartItem)
		v1.PUT("/cart/items/:key/quantity", s.UpdateCartQuantity)
		v1.PUT("/cart/items/:key/observation", s.UpdateCartObservation)
		v1.DELETE("/cart/items/:key", s.RemoveCartItem)
		v1.DELETE("/cart", s.ClearCart)

		// Checkout session and WhatsApp handoff
		v1.GET("/checkout", s.GetCheckout)
		v1.PUT("/checkout", s.SaveCheckout)
		v1.POST("/checkout/whatsapp", s.ComposeOrder)
		v1.GET("/whatsapp/general", s.GeneralWhatsAppLink)
		v1.GET("/whatsapp/kits", s.KitsWhatsAppLink)

		// Contact form relay
		v1.POST("/contact", s.SubmitContact)
	}
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}
