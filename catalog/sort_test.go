package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24vasilekk/dolce/models"
)

func TestSortPriceAscUsesEffectivePrice(t *testing.T) {
	products := []models.Product{
		{ID: "full", Price: 100},
		{ID: "sale", Price: 200, OnSale: true, SalePrice: 50},
	}
	Sort(products, models.SortPriceAsc)
	assert.Equal(t, []models.ProductID{"sale", "full"}, ids(products))
}

func TestSortPriceAscFullSample(t *testing.T) {
	products := SampleProducts()
	Sort(products, models.SortPriceAsc)

	require.Len(t, products, 8)
	// Adidas kids sneakers sell for 5990 on sale, the cheapest item.
	assert.Equal(t, "Adidas", products[0].Brand)
	assert.Equal(t, 5990, products[0].EffectivePrice())
	// The Hermès bag at 1 250 000 is the most expensive.
	assert.Equal(t, "Hermès", products[7].Brand)

	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].EffectivePrice(), products[i].EffectivePrice())
	}
}

func TestSortPriceDesc(t *testing.T) {
	products := SampleProducts()
	Sort(products, models.SortPriceDesc)
	assert.Equal(t, "Hermès", products[0].Brand)
	assert.Equal(t, "Adidas", products[7].Brand)
}

func TestSortByBrandLexicographic(t *testing.T) {
	products := []models.Product{
		{ID: "1", Brand: "Prada"},
		{ID: "2", Brand: "Adidas"},
		{ID: "3", Brand: "Nike"},
	}
	Sort(products, models.SortBrand)
	assert.Equal(t, []models.ProductID{"2", "3", "1"}, ids(products))
}

func TestSortByNameCollatesCyrillic(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Шарф кашемировый"},
		{ID: "2", Name: "Кроссовки Air Max 270"},
		{ID: "3", Name: "Платье миди"},
	}
	Sort(products, models.SortName)
	assert.Equal(t, []models.ProductID{"2", "3", "1"}, ids(products))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	products := []models.Product{
		{ID: "first", Price: 500},
		{ID: "second", Price: 500},
		{ID: "third", Price: 500},
	}
	Sort(products, models.SortPriceAsc)
	assert.Equal(t, []models.ProductID{"first", "second", "third"}, ids(products))
}

func TestSortUnknownKeyLeavesOrder(t *testing.T) {
	products := []models.Product{
		{ID: "b", Name: "B", Price: 2},
		{ID: "a", Name: "A", Price: 1},
	}
	Sort(products, models.SortKey("newest"))
	assert.Equal(t, []models.ProductID{"b", "a"}, ids(products))
}
