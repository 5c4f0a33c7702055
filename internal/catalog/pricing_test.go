package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/altivento/altivento-backend/internal/content"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
)

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func pricedProduct() *content.Product {
	return &content.Product{
		ID:   "carpa plafon liso blanco",
		Name: "Carpa Plafón Liso Blanco",
		Pricing: &content.PricingInfo{
			PricePerUnit: 95,
			Unit:         "m²",
			MinUnits:     100,
			DiscountThresholds: []content.DiscountThreshold{
				{Units: 300, DiscountPercentage: 5},
				{Units: 500, DiscountPercentage: 10},
			},
		},
	}
}

func TestQuoteProductNoDiscount(t *testing.T) {
	quote, err := quoteProduct(pricedProduct(), 100)
	require.NoError(t, err)

	require.Equal(t, 100, quote.Units)
	require.Equal(t, "m²", quote.Unit)
	requireDecimal(t, "9500", quote.Subtotal)
	requireDecimal(t, "0", quote.DiscountPercentage)
	requireDecimal(t, "0", quote.DiscountAmount)
	requireDecimal(t, "9500", quote.Total)
}

func TestQuoteProductAppliesHighestQualifyingThreshold(t *testing.T) {
	quote, err := quoteProduct(pricedProduct(), 300)
	require.NoError(t, err)
	requireDecimal(t, "28500", quote.Subtotal)
	requireDecimal(t, "5", quote.DiscountPercentage)
	requireDecimal(t, "1425", quote.DiscountAmount)
	requireDecimal(t, "27075", quote.Total)

	quote, err = quoteProduct(pricedProduct(), 500)
	require.NoError(t, err)
	requireDecimal(t, "10", quote.DiscountPercentage)
	requireDecimal(t, "4750", quote.DiscountAmount)
	requireDecimal(t, "42750", quote.Total)
}

func TestQuoteProductBelowMinimum(t *testing.T) {
	_, err := quoteProduct(pricedProduct(), 50)
	require.Error(t, err)

	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestQuoteProductNonPositiveUnits(t *testing.T) {
	for _, units := range []int{0, -10} {
		_, err := quoteProduct(pricedProduct(), units)
		require.Error(t, err, "units %d", units)
	}
}

func TestQuoteProductConsultationOnly(t *testing.T) {
	unpriced := &content.Product{ID: "carpa alemana", Name: "Carpa Alemana"}

	_, err := quoteProduct(unpriced, 100)
	require.Error(t, err)

	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}
