package models

// Pseudo-category slugs. They appear in the taxonomy next to real
// categories but carry special filtering semantics: "all" and "brands"
// apply no category clause, "sale" restricts to discounted items.
const (
	SlugAll    = "all"
	SlugSale   = "sale"
	SlugBrands = "brands"
)

// SubcategoryAll is the sentinel subcategory label meaning "no
// subcategory constraint".
const SubcategoryAll = "All Items"

// Category is one node of the static taxonomy tree. Subcategories are
// plain labels scoped to their category.
type Category struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Subcategories []string `json:"subcategories"`
}

// Pseudo reports whether the slug carries no category-equality clause.
func (c Category) Pseudo() bool {
	return c.Slug == SlugAll || c.Slug == SlugSale || c.Slug == SlugBrands
}

// NavigationContext is the user's current position in the taxonomy,
// orthogonal to FilterCriteria. Zero values mean "unset".
type NavigationContext struct {
	Gender      Gender
	Category    *Category
	Subcategory string
}
