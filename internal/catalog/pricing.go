package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/altivento/altivento-backend/internal/content"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
)

// ProductQuote is a per-unit price estimate for a product with published
// pricing. Amounts are MXN with two decimal places.
type ProductQuote struct {
	ProductID          string          `json:"productId"`
	Unit               string          `json:"unit"`
	Units              int             `json:"units"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	Total              decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// quoteProduct prices units of a product, applying the highest discount
// threshold the unit count qualifies for.
func quoteProduct(product *content.Product, units int) (*ProductQuote, error) {
	pricing := product.Pricing
	if pricing == nil || pricing.PricePerUnit <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is priced on consultation only").
			WithDetails(map[string]any{"product_id": product.ID})
	}
	if units <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "units must be positive")
	}
	if pricing.MinUnits > 0 && units < pricing.MinUnits {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "units below product minimum").
			WithDetails(map[string]any{"min_units": pricing.MinUnits})
	}

	unitPrice := decimal.NewFromFloat(pricing.PricePerUnit)
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(units)))

	discountPct := decimal.Zero
	for _, threshold := range pricing.DiscountThresholds {
		if units >= threshold.Units {
			pct := decimal.NewFromFloat(threshold.DiscountPercentage)
			if pct.GreaterThan(discountPct) {
				discountPct = pct
			}
		}
	}

	discount := subtotal.Mul(discountPct).Div(oneHundred).Round(2)
	total := subtotal.Sub(discount)

	return &ProductQuote{
		ProductID:          product.ID,
		Unit:               pricing.Unit,
		Units:              units,
		UnitPrice:          unitPrice,
		Subtotal:           subtotal.Round(2),
		DiscountPercentage: discountPct,
		DiscountAmount:     discount,
		Total:              total.Round(2),
	}, nil
}
