package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/24vasilekk/dolce/models"
)

// SimilarLimit is how many related products a detail view shows.
const SimilarLimit = 4

// FindSimilar ranks products related to the target using a tiered
// relaxation strategy, never including the target itself and returning
// at most SimilarLimit items:
//
//	tier 1: same brand, same gender, similar name
//	tier 2: same category, subcategory and gender
//	tier 3: same brand and gender
//	tier 4: same category and gender (backfill when tiers 1-3 are short)
//
// Tiers are appended in order with first-seen de-duplication, so a
// product matched by an earlier tier keeps its earlier rank. A full
// tier 1 wins outright. If every tier is empty the caller gets any
// other same-gender products in catalog order.
func FindSimilar(target models.Product, products []models.Product) []models.Product {
	seen := map[models.ProductID]struct{}{target.ID: {}}
	var ranked []models.Product

	appendTier := func(match func(models.Product) bool) {
		for _, p := range products {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			if match(p) {
				seen[p.ID] = struct{}{}
				ranked = append(ranked, p)
			}
		}
	}

	appendTier(func(p models.Product) bool {
		return p.Brand == target.Brand && p.Gender == target.Gender &&
			similarName(p.Name, target.Name)
	})
	if len(ranked) >= SimilarLimit {
		return ranked[:SimilarLimit]
	}

	appendTier(func(p models.Product) bool {
		return p.Category == target.Category &&
			p.Subcategory == target.Subcategory &&
			p.Gender == target.Gender
	})
	appendTier(func(p models.Product) bool {
		return p.Brand == target.Brand && p.Gender == target.Gender
	})

	if len(ranked) < SimilarLimit {
		appendTier(func(p models.Product) bool {
			return p.Category == target.Category && p.Gender == target.Gender
		})
	}

	if len(ranked) == 0 {
		appendTier(func(p models.Product) bool {
			return p.Gender == target.Gender
		})
	}

	if len(ranked) > SimilarLimit {
		ranked = ranked[:SimilarLimit]
	}
	return ranked
}

// similarName is the name heuristic behind tier 1: both names are split
// into lowercase whitespace tokens, and they are similar when at least
// two distinct tokens are shared, or one shared token is longer than
// four runes. No stemming or further normalization.
func similarName(a, b string) bool {
	bTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(b)) {
		bTokens[tok] = struct{}{}
	}

	common := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(a)) {
		if _, ok := bTokens[tok]; !ok {
			continue
		}
		if utf8.RuneCountInString(tok) > 4 {
			return true
		}
		common[tok] = struct{}{}
	}
	return len(common) >= 2
}
