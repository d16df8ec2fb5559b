package catalog

import (
	"strings"

	"github.com/24vasilekk/dolce/models"
)

// Filter returns the products matching the navigation context and
// filter criteria, preserving catalog order among matches. An empty
// result is a valid outcome, not an error.
func Filter(products []models.Product, nav models.NavigationContext, criteria models.FilterCriteria) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, nav, criteria) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matches ANDs every active clause; inactive clauses pass.
func matches(p models.Product, nav models.NavigationContext, criteria models.FilterCriteria) bool {
	if nav.Gender != "" && p.Gender != nav.Gender {
		return false
	}

	// Pseudo-slugs carry no category-equality clause; "sale" instead
	// restricts to discounted items below.
	if nav.Category != nil && !nav.Category.Pseudo() && p.Category != nav.Category.Slug {
		return false
	}

	if nav.Subcategory != "" && nav.Subcategory != models.SubcategoryAll && p.Subcategory != nav.Subcategory {
		return false
	}

	if nav.Category != nil && nav.Category.Slug == models.SlugSale && !p.OnSale {
		return false
	}

	if criteria.SearchQuery != "" {
		q := strings.ToLower(criteria.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if criteria.Brands.Len() > 0 && !criteria.Brands.Has(p.Brand) {
		return false
	}
	if criteria.Colors.Len() > 0 && !criteria.Colors.HasAny(p.Colors) {
		return false
	}
	if criteria.Sizes.Len() > 0 && !criteria.Sizes.HasAny(p.Sizes) {
		return false
	}
	if criteria.Materials.Len() > 0 && !criteria.Materials.HasAny(p.Materials) {
		return false
	}

	if criteria.OnSale && !p.OnSale {
		return false
	}

	return true
}
