package services

import (
	"fmt"
	"net/url"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/24vasilekk/dolce/models"
)

const supportLink = "https://t.me/dolcedeals_support"

// ComposeInquiry formats a human-readable order summary for the given
// product and size and wraps it in the support channel's deep link.
// Nothing is stored server-side; the returned link is the whole
// hand-off.
func ComposeInquiry(p models.Product, size string) (models.OrderInquiry, error) {
	if !p.HasSize(size) {
		return models.OrderInquiry{}, fmt.Errorf("size %q is not available for product %s", size, p.ID)
	}

	printer := message.NewPrinter(language.Russian)
	summary := fmt.Sprintf(
		"Заказ: %s %s\nРазмер: %s\nЦена: %s",
		p.Brand, p.Name, size,
		printer.Sprintf("%d ₽", p.EffectivePrice()),
	)

	return models.OrderInquiry{
		ProductID: p.ID,
		Summary:   summary,
		Link:      supportLink + "?text=" + url.QueryEscape(summary),
	}, nil
}
