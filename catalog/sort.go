package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/24vasilekk/dolce/models"
)

// Sort orders products in place by the given key. The sort is stable:
// products with equal keys keep their catalog order, so repeated
// renders resolve ties identically. An unrecognized key leaves the
// slice untouched.
//
// Name and brand use Russian collation, matching the catalog's locale.
func Sort(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case models.SortName:
		// Collators buffer internally and are not safe for concurrent
		// use, so each call gets its own.
		c := collate.New(language.Russian)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortBrand:
		c := collate.New(language.Russian)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Brand, products[j].Brand) < 0
		})
	}
}
