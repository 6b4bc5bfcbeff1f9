package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tokusound/services"
	"tokusound/types"
)

// CatalogHandler serves the catalog, the filtered sound list and the tag
// index. The catalog is loaded once at startup; a load failure leaves an
// empty catalog in place and the error is reported alongside responses.
type CatalogHandler struct {
	catalog   *types.Catalog
	loadError string
}

// NewCatalogHandler creates a catalog handler over an already-loaded
// catalog. loadError carries the user-facing message of a failed load,
// empty when the load succeeded.
func NewCatalogHandler(catalog *types.Catalog, loadError string) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		loadError: loadError,
	}
}

// GetCatalog returns the full catalog document
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	if h.loadError != "" {
		c.JSON(http.StatusOK, gin.H{
			"categories": h.catalog.Categories,
			"sounds":     h.catalog.Sounds,
			"error":      h.loadError,
		})
		return
	}
	c.JSON(http.StatusOK, h.catalog)
}

// GetSounds returns the sounds matching the filter query parameters:
// search, category, season and tags (comma-joined)
func (h *CatalogHandler) GetSounds(c *gin.Context) {
	state := types.FilterState{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Season:   c.Query("season"),
		Tags:     splitTags(c.Query("tags")),
	}

	sounds := services.FilterSounds(h.catalog.Sounds, state)
	c.JSON(http.StatusOK, gin.H{
		"sounds": sounds,
		"count":  len(sounds),
	})
}

// GetTags returns the tag index sorted by name
func (h *CatalogHandler) GetTags(c *gin.Context) {
	tags := services.ExtractTags(h.catalog.Sounds)
	services.SortTagsByName(tags)
	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"count": len(tags),
	})
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
