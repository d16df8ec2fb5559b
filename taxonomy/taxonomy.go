// Package taxonomy holds the static category tree the storefront
// navigates by. It is read-only external configuration: the catalog
// core never writes to it and does not enforce it beyond the
// pseudo-slug rules in the filter engine.
package taxonomy

import "github.com/24vasilekk/dolce/models"

// GenderSection is the taxonomy subtree for one gender.
type GenderSection struct {
	Title      string            `json:"title"`
	Categories []models.Category `json:"categories"`
}

// ForGender returns the section for the given gender, or false for an
// unknown one.
func ForGender(gender models.Gender) (GenderSection, bool) {
	section, ok := tree[gender]
	return section, ok
}

// FindCategory looks a category up by slug within a gender section.
func FindCategory(gender models.Gender, slug string) (*models.Category, bool) {
	section, ok := tree[gender]
	if !ok {
		return nil, false
	}
	for i := range section.Categories {
		if section.Categories[i].Slug == slug {
			c := section.Categories[i]
			return &c, true
		}
	}
	return nil, false
}

// All returns the whole tree keyed by gender.
func All() map[models.Gender]GenderSection {
	return tree
}

// pseudoCategories are shared by every gender section.
func pseudoCategories() []models.Category {
	return []models.Category{
		{Name: "All Products", Slug: models.SlugAll, Subcategories: []string{}},
		{Name: "Sale", Slug: models.SlugSale, Subcategories: []string{}},
		{Name: "Brands", Slug: models.SlugBrands, Subcategories: []string{}},
	}
}

var tree = map[models.Gender]GenderSection{
	models.GenderMen: {
		Title: "Men",
		Categories: append(pseudoCategories(), []models.Category{
			{Name: "Clothing", Slug: "clothing", Subcategories: []string{
				models.SubcategoryAll, "Pants", "Outerwear", "Jeans",
				"T-Shirts & Tanks", "Underwear & Loungewear",
				"Swim & Beach Shorts", "Shirts", "Tracksuits", "Knitwear",
				"Hoodies & Sweatshirts", "Shorts",
			}},
			{Name: "Shoes", Slug: "shoes", Subcategories: []string{
				models.SubcategoryAll, "Boots", "Sneakers",
				"Loafers & Moccasins", "Sandals & Slides", "Dress Shoes",
				"Espadrilles",
			}},
			{Name: "Bags", Slug: "bags", Subcategories: []string{
				models.SubcategoryAll, "Briefcases", "Document Holders",
				"Portfolios", "Belt Bags", "Backpacks",
				"Duffel & Travel Bags", "Shoulder Bags", "Tote Bags",
			}},
			{Name: "Accessories", Slug: "accessories", Subcategories: []string{
				models.SubcategoryAll, "Hats", "Other", "Home Toys", "Rings",
				"Wallets & Cardholders", "Cases & Covers", "Sunglasses",
				"Gloves", "Belts", "Watches", "Scarves",
			}},
			{Name: "Beauty", Slug: "beauty", Subcategories: []string{
				models.SubcategoryAll, "Sets", "Fragrance", "Skincare",
				"Body Care",
			}},
			{Name: "Jewelry", Slug: "jewelry", Subcategories: []string{
				models.SubcategoryAll, "Bracelets", "Rings", "Pendants",
			}},
		}...),
	},
	models.GenderWomen: {
		Title: "Women",
		Categories: append(pseudoCategories(), []models.Category{
			{Name: "Clothing", Slug: "clothing", Subcategories: []string{
				models.SubcategoryAll, "Blouses & Shirts", "Pants",
				"Outerwear", "Jeans", "Jumpsuits", "Suits", "Swimwear",
				"T-Shirts & Tanks", "Underwear & Loungewear", "Dresses",
				"Activewear", "Knitwear", "Hoodies & Sweatshirts", "Skirts",
			}},
			{Name: "Shoes", Slug: "shoes", Subcategories: []string{
				models.SubcategoryAll, "Flats", "Ankle Boots", "Boots",
				"Sneakers", "Loafers & Moccasins", "Sandals", "Tall Boots",
				"Pumps & Heels", "Slides", "Espadrilles",
			}},
			{Name: "Bags", Slug: "bags", Subcategories: []string{
				models.SubcategoryAll, "Clutches", "Cosmetic Cases",
				"Belt Bags", "Backpacks", "Duffel & Travel Bags",
				"Shoulder Bags", "Tote Bags", "Crossbody Bags", "Luggage",
			}},
			{Name: "Accessories", Slug: "accessories", Subcategories: []string{
				models.SubcategoryAll, "Hats", "Other", "Hair Accessories",
				"Wallets & Cardholders", "Cases & Covers", "Sunglasses",
				"Gloves", "Belts", "Watches", "Scarves & Wraps",
			}},
			{Name: "Beauty", Slug: "beauty", Subcategories: []string{
				models.SubcategoryAll, "Makeup", "Sets", "Fragrance",
				"Hair Care", "Skincare", "Body Care",
			}},
			{Name: "Jewelry", Slug: "jewelry", Subcategories: []string{
				models.SubcategoryAll, "Bracelets", "Brooches", "Necklaces",
				"Rings", "Pendants", "Earrings",
			}},
		}...),
	},
	models.GenderKids: {
		Title: "Kids",
		Categories: append(pseudoCategories(), []models.Category{
			{Name: "Clothing", Slug: "clothing", Subcategories: []string{
				models.SubcategoryAll, "Pants", "Outerwear", "Jeans",
				"Jumpsuits", "Swimwear", "T-Shirts & Tanks", "Underwear",
				"Dresses", "Activewear", "Knitwear", "Hoodies & Sweatshirts",
				"Shorts", "Skirts",
			}},
			{Name: "Shoes", Slug: "shoes", Subcategories: []string{
				models.SubcategoryAll, "Flats", "Boots", "Sneakers",
				"Sandals", "Tall Boots", "Dress Shoes", "Slides",
			}},
			{Name: "Bags", Slug: "bags", Subcategories: []string{
				models.SubcategoryAll, "Kids Bags", "Backpacks", "Sports Bags",
			}},
			{Name: "Accessories", Slug: "accessories", Subcategories: []string{
				models.SubcategoryAll, "Hats", "Hair Accessories", "Toys",
				"Sunglasses", "Gloves", "Belts", "Watches", "Scarves",
			}},
			{Name: "Beauty", Slug: "beauty", Subcategories: []string{
				models.SubcategoryAll, "Kids Cosmetics", "Hair Care",
				"Body Care",
			}},
			{Name: "Jewelry", Slug: "jewelry", Subcategories: []string{
				models.SubcategoryAll, "Bracelets", "Rings", "Pendants",
			}},
		}...),
	},
}
