package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24vasilekk/dolce/models"
)

func TestSimilarNameHeuristic(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Кроссовки Air Max 270", "Кроссовки Air Max 90", true},  // 3 common tokens
		{"Air Jordan", "Air Force", false},                      // 1 short common token
		{"Кроссовки беговые", "Кроссовки детские", true},        // 1 long common token
		{"Shoes classic", "Boots modern", false},                // nothing shared
		{"polo SHIRT slim", "Polo shirt", true},                 // case-insensitive, 2 common
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, similarName(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestFindSimilarExcludesTargetAndCapsAtFour(t *testing.T) {
	target := models.Product{ID: "t", Name: "Кроссовки беговые", Brand: "Nike", Gender: models.GenderMen, Category: "shoes", Subcategory: "Sneakers"}
	var products []models.Product
	products = append(products, target)
	for _, id := range []models.ProductID{"a", "b", "c", "d", "e", "f"} {
		products = append(products, models.Product{
			ID: id, Name: "Кроссовки городские", Brand: "Nike",
			Gender: models.GenderMen, Category: "shoes", Subcategory: "Sneakers",
		})
	}

	similar := FindSimilar(target, products)
	require.Len(t, similar, SimilarLimit)
	for _, p := range similar {
		assert.NotEqual(t, target.ID, p.ID)
	}
	// Tier 1 is full on its own, earliest catalog entries win.
	assert.Equal(t, []models.ProductID{"a", "b", "c", "d"}, ids(similar))
}

func TestFindSimilarTierOrderAndDeduplication(t *testing.T) {
	target := models.Product{ID: "t", Name: "Платье вечернее", Brand: "Gucci", Gender: models.GenderWomen, Category: "clothing", Subcategory: "Dresses"}
	products := []models.Product{
		target,
		// tier 3 only: same brand+gender, unrelated name and category
		{ID: "brandmate", Name: "Сумка", Brand: "Gucci", Gender: models.GenderWomen, Category: "bags", Subcategory: "Tote Bags"},
		// tier 2: same category+subcategory+gender, other brand
		{ID: "catmate", Name: "Юбка", Brand: "Prada", Gender: models.GenderWomen, Category: "clothing", Subcategory: "Dresses"},
		// tier 1: same brand+gender+similar name (also matches tier 2 and 3)
		{ID: "namemate", Name: "Платье коктейльное", Brand: "Gucci", Gender: models.GenderWomen, Category: "clothing", Subcategory: "Dresses"},
		// wrong gender, never eligible
		{ID: "othergender", Name: "Платье летнее", Brand: "Gucci", Gender: models.GenderKids, Category: "clothing", Subcategory: "Dresses"},
	}

	similar := FindSimilar(target, products)
	// Tier 1 first, then tier 2, then tier 3; namemate appears once.
	assert.Equal(t, []models.ProductID{"namemate", "catmate", "brandmate"}, ids(similar))
}

func TestFindSimilarTierFourBackfill(t *testing.T) {
	target := models.Product{ID: "t", Name: "Ботинки", Brand: "Prada", Gender: models.GenderMen, Category: "shoes", Subcategory: "Boots"}
	products := []models.Product{
		target,
		// tier 4: same category+gender, different subcategory and brand
		{ID: "backfill", Name: "Лоферы", Brand: "Gucci", Gender: models.GenderMen, Category: "shoes", Subcategory: "Loafers & Moccasins"},
	}

	similar := FindSimilar(target, products)
	assert.Equal(t, []models.ProductID{"backfill"}, ids(similar))
}

func TestFindSimilarGenderFallback(t *testing.T) {
	target := models.Product{ID: "t", Name: "Часы", Brand: "Rolex", Gender: models.GenderMen, Category: "accessories", Subcategory: "Watches"}
	products := []models.Product{
		target,
		{ID: "m1", Name: "Рубашка", Brand: "Prada", Gender: models.GenderMen, Category: "clothing", Subcategory: "Shirts"},
		{ID: "w1", Name: "Платье", Brand: "Gucci", Gender: models.GenderWomen, Category: "clothing", Subcategory: "Dresses"},
	}

	similar := FindSimilar(target, products)
	// No tier matches; any same-gender product in catalog order.
	assert.Equal(t, []models.ProductID{"m1"}, ids(similar))
}

func TestFindSimilarFewerThanFourAvailable(t *testing.T) {
	products := SampleProducts()
	target := products[0] // Nike men sneakers

	similar := FindSimilar(target, products)
	require.NotEmpty(t, similar)
	assert.LessOrEqual(t, len(similar), SimilarLimit)
	for _, p := range similar {
		assert.NotEqual(t, target.ID, p.ID)
		assert.Equal(t, models.GenderMen, p.Gender)
	}
}

func TestFindSimilarEmptyCatalog(t *testing.T) {
	target := models.Product{ID: "t", Gender: models.GenderMen}
	assert.Empty(t, FindSimilar(target, nil))
}
