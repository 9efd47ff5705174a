package server

import (
	"net/http"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	catalog *catalog.Catalog
}

func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: cat}
}

// List handles GET /api/menu. The category defaults to the first tab; an
// unknown category is a 404.
func (h *MenuHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", h.catalog.DefaultCategory())
	if !h.catalog.HasCategory(category) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Unknown category: " + category})
		return
	}
	query := c.Query("q")
	c.JSON(http.StatusOK, models.MenuResponse{
		Category: category,
		Query:    query,
		Items:    h.catalog.Filter(category, query),
	})
}

// Categories handles GET /api/menu/categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoriesResponse{
		Categories: h.catalog.CategoryNames(),
		Default:    h.catalog.DefaultCategory(),
	})
}
