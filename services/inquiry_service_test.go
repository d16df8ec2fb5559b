package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24vasilekk/dolce/models"
)

func sneakers() models.Product {
	return models.Product{
		ID: "1", Name: "Кроссовки Air Max 270", Brand: "Nike",
		Price: 12990, Gender: models.GenderMen,
		Sizes: []string{"40", "41", "42"},
	}
}

func TestComposeInquirySummary(t *testing.T) {
	inq, err := ComposeInquiry(sneakers(), "42")
	require.NoError(t, err)

	assert.Equal(t, models.ProductID("1"), inq.ProductID)
	lines := strings.Split(inq.Summary, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Заказ: Nike Кроссовки Air Max 270", lines[0])
	assert.Equal(t, "Размер: 42", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Цена: "))
	assert.True(t, strings.HasSuffix(lines[2], "₽"))
}

func TestComposeInquiryUsesEffectivePrice(t *testing.T) {
	p := sneakers()
	p.OnSale = true
	p.SalePrice = 990

	inq, err := ComposeInquiry(p, "42")
	require.NoError(t, err)
	assert.Contains(t, inq.Summary, "990")
	assert.NotContains(t, inq.Summary, "12")
}

func TestComposeInquiryLinkEscapesSummary(t *testing.T) {
	inq, err := ComposeInquiry(sneakers(), "41")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(inq.Link, "https://t.me/dolcedeals_support?text="))
	escaped := strings.TrimPrefix(inq.Link, "https://t.me/dolcedeals_support?text=")
	decoded, decodeErr := url.QueryUnescape(escaped)
	require.NoError(t, decodeErr)
	assert.Equal(t, inq.Summary, decoded)
	// Raw newlines and spaces never leak into the query string.
	assert.NotContains(t, escaped, "\n")
	assert.NotContains(t, escaped, " ")
}

func TestComposeInquiryRejectsUnavailableSize(t *testing.T) {
	_, err := ComposeInquiry(sneakers(), "45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "45")

	_, err = ComposeInquiry(sneakers(), "")
	assert.Error(t, err)
}
