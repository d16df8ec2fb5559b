package catalog

import "github.com/24vasilekk/dolce/models"

// DefaultPageSize is the fixed storefront page size.
const DefaultPageSize = 20

// VisibleSlice returns the prefix of the sorted result revealed after
// the given number of pages. It is a "reveal more", not a moving
// window: page 2 returns the first two pages worth of items.
func VisibleSlice(sorted []models.Product, page, pageSize int) []models.Product {
	if page < 1 {
		page = 1
	}
	end := page * pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[:end]
}

// HasMore reports whether another page would reveal more items.
func HasMore(sorted []models.Product, page, pageSize int) bool {
	if page < 1 {
		page = 1
	}
	return page*pageSize < len(sorted)
}
