package product_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/favorites"
	"github.com/24vasilekk/dolce/models"
	"github.com/24vasilekk/dolce/taxonomy"
)

// ─────────────────────────────────────────────────────────────
// Shared state
// ─────────────────────────────────────────────────────────────

var (
	store    *catalog.Store
	favStore *favorites.Store
)

// Init wires the controllers to the catalog and favorites stores.
func Init(s *catalog.Store, f *favorites.Store) {
	store = s
	favStore = f
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// parseNavigation builds the navigation context from query params.
// Category slugs are resolved against the taxonomy for the requested
// gender; an unknown slug is an error rather than a silent no-filter.
func parseNavigation(c *gin.Context) (models.NavigationContext, error) {
	var nav models.NavigationContext

	if g := c.Query("gender"); g != "" {
		gender := models.Gender(g)
		if !gender.Valid() {
			return nav, fmt.Errorf("unknown gender %q", g)
		}
		nav.Gender = gender
	}

	if slug := c.Query("category"); slug != "" {
		if nav.Gender == "" {
			return nav, fmt.Errorf("category filter requires gender")
		}
		category, ok := taxonomy.FindCategory(nav.Gender, slug)
		if !ok {
			return nav, fmt.Errorf("unknown category %q", slug)
		}
		nav.Category = category
	}

	nav.Subcategory = strings.TrimSpace(c.Query("subcategory"))
	return nav, nil
}

// parseCriteria builds the filter criteria from repeatable query
// params plus the search and sale flags.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.NewFilterCriteria()
	for _, b := range c.QueryArray("brand") {
		criteria.Brands.Add(strings.TrimSpace(b))
	}
	for _, col := range c.QueryArray("color") {
		criteria.Colors.Add(strings.TrimSpace(col))
	}
	for _, s := range c.QueryArray("size") {
		criteria.Sizes.Add(strings.TrimSpace(s))
	}
	for _, m := range c.QueryArray("material") {
		criteria.Materials.Add(strings.TrimSpace(m))
	}
	criteria.OnSale = c.Query("onSale") == "true"
	criteria.SearchQuery = strings.TrimSpace(c.Query("q"))
	return criteria
}
