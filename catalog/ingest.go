package catalog

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/24vasilekk/dolce/models"
)

// NormalizeBatch validates and normalizes externally authored product
// records, one JSON document each. Records are judged independently:
// anything that fails to decode or lacks name, brand, a positive price
// or an image is silently dropped. Survivors are normalized so that
// downstream engines can trust the data model:
//
//   - missing id → generated token
//   - nil colors/sizes/materials → empty lists
//   - onSale without a sale price below the list price → not on sale
//
// The caller reports only the accepted count, not per-record
// diagnostics.
func NormalizeBatch(records []json.RawMessage) []models.Product {
	accepted := make([]models.Product, 0, len(records))
	for _, raw := range records {
		var p models.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if p.Name == "" || p.Brand == "" || p.Price <= 0 || p.Image == "" {
			continue
		}
		accepted = append(accepted, normalize(p))
	}
	return accepted
}

func normalize(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = models.ProductID(uuid.NewString())
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Materials == nil {
		p.Materials = []string{}
	}
	if p.OnSale && (p.SalePrice <= 0 || p.SalePrice >= p.Price) {
		p.OnSale = false
		p.SalePrice = 0
	}
	if !p.OnSale {
		p.SalePrice = 0
	}
	return p
}
