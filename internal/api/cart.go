package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"doceencanto/internal/cart"
	"doceencanto/internal/catalog"
	"doceencanto/internal/models"
	"doceencanto/internal/money"
)

type cartLineView struct {
	models.CartItem
	SubtotalLabel string `json:"subtotalLabel"`
}

type cartView struct {
	Items      []cartLineView  `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	TotalLabel string          `json:"totalLabel"`
}

func viewOfCart(store *cart.Store) cartView {
	items := store.Items()
	lines := make([]cartLineView, len(items))
	for i, item := range items {
		lines[i] = cartLineView{CartItem: item, SubtotalLabel: money.FormatBRL(item.Subtotal())}
	}
	total := store.TotalPrice()
	return cartView{
		Items:      lines,
		TotalItems: store.TotalItems(),
		TotalPrice: total,
		TotalLabel: money.FormatBRL(total),
	}
}

// GetCart returns the session's cart with derived totals.
func (s *Server) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, viewOfCart(s.cartStore(c)))
}

type addItemRequest struct {
	ID          string `json:"id" binding:"required"`
	Quantity    int    `json:"quantity"`
	Observation string `json:"observation"`
}

// AddCartItem adds a catalog product to the cart, snapshotting its price at
// add time. Entries with the same product id and observation merge into one
// line.
func (s *Server) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := catalog.Find(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	store := s.cartStore(c)
	store.AddItem(models.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
		Quantity:    req.Quantity,
		Observation: req.Observation,
	})
	s.monitor.RecordCartMutation("add")

	c.JSON(http.StatusCreated, viewOfCart(store))
}

type updateQuantityRequest struct {
	// pointer so an explicit zero (remove the line) binds
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartQuantity sets a line's quantity. Zero or less removes the line.
func (s *Server) UpdateCartQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := s.cartStore(c)
	if !store.UpdateQuantity(c.Param("key"), *req.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		return
	}
	s.monitor.RecordCartMutation("update_quantity")

	c.JSON(http.StatusOK, viewOfCart(store))
}

type updateObservationRequest struct {
	Observation string `json:"observation"`
}

// UpdateCartObservation replaces a line's observation. An empty observation
// is valid.
func (s *Server) UpdateCartObservation(c *gin.Context) {
	var req updateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := s.cartStore(c)
	if !store.UpdateObservation(c.Param("key"), req.Observation) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		return
	}
	s.monitor.RecordCartMutation("update_observation")

	c.JSON(http.StatusOK, viewOfCart(store))
}

// RemoveCartItem deletes a line from the cart.
func (s *Server) RemoveCartItem(c *gin.Context) {
	store := s.cartStore(c)
	if !store.RemoveItem(c.Param("key")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		return
	}
	s.monitor.RecordCartMutation("remove")

	c.JSON(http.StatusOK, viewOfCart(store))
}

// ClearCart empties the session's cart.
func (s *Server) ClearCart(c *gin.Context) {
	store := s.cartStore(c)
	store.Clear()
	s.monitor.RecordCartMutation("clear")

	c.JSON(http.StatusOK, viewOfCart(store))
}
