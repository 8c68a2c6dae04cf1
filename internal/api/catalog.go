package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doceencanto/internal/catalog"
	"doceencanto/internal/models"
	"doceencanto/internal/money"
)

// productView decorates a product with its display price so every surface
// formats currency the same way.
type productView struct {
	models.Product
	PriceLabel string `json:"priceLabel"`
}

func viewOf(p models.Product) productView {
	label := money.FormatBRL(p.Price)
	if p.QuoteOnly() {
		label = "Sob consulta"
	}
	return productView{Product: p, PriceLabel: label}
}

// ListProducts returns the filtered, searched and sorted catalog view.
func (s *Server) ListProducts(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)
	search := c.Query("search")
	sortBy := catalog.SortOption(c.DefaultQuery("sort", string(catalog.SortRelevance)))

	filtered := catalog.FilterAndSort(catalog.Products(), category, search, sortBy)
	views := make([]productView, len(filtered))
	for i, p := range filtered {
		views[i] = viewOf(p)
	}

	c.JSON(http.StatusOK, gin.H{"products": views, "count": len(views)})
}

// GetProduct returns one product by id. Returns 404 if not found.
func (s *Server) GetProduct(c *gin.Context) {
	p, ok := catalog.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}

// ListCategories returns the menu categories in display order.
func (s *Server) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories)
}

// ListSortOptions returns the sort options in display order.
func (s *Server) ListSortOptions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.SortOptions)
}
