package catalog

import (
	"github.com/altivento/altivento-backend/internal/content"
	"github.com/altivento/altivento-backend/pkg/slug"
)

// Identifier resolution is an ordered fallback chain: each stage is tried
// against the whole collection before moving to the next, and the first
// entry a stage matches wins. The tie-break by first encounter is
// deterministic and callers depend on it; do not replace it with scoring.

func firstMatch[T any](identifier string, items []T, stages []func(string, T) bool) (*T, bool) {
	for _, stage := range stages {
		for i := range items {
			if stage(identifier, items[i]) {
				return &items[i], true
			}
		}
	}
	return nil, false
}

var categoryStages = []func(string, content.Category) bool{
	// Raw slug equality first: legacy slugs that would not survive
	// normalization must still route.
	func(identifier string, c content.Category) bool {
		return identifier == c.Slug
	},
	func(identifier string, c content.Category) bool {
		return slug.Normalize(identifier) == slug.Normalize(c.Slug)
	},
	func(identifier string, c content.Category) bool {
		return slug.Normalize(identifier) == slug.Normalize(c.ID)
	},
	func(identifier string, c content.Category) bool {
		return slug.Normalize(slug.Deslugify(identifier)) == slug.Normalize(c.Name)
	},
	// Some category names were slugified in links but never stored as the
	// category's slug.
	func(identifier string, c content.Category) bool {
		return slug.Normalize(slug.Slugify(c.Name)) == slug.Normalize(identifier)
	},
}

func resolveCategory(identifier string, categories []content.Category) (*content.Category, bool) {
	return firstMatch(identifier, categories, categoryStages)
}

var productStages = []func(string, content.Product) bool{
	func(identifier string, p content.Product) bool {
		return identifier == p.ID
	},
	func(identifier string, p content.Product) bool {
		return slug.Normalize(identifier) == slug.Normalize(p.ID)
	},
	// Product ids are stored with spaces but arrive as hyphenated slugs.
	func(identifier string, p content.Product) bool {
		return slug.Normalize(slug.Deslugify(identifier)) == slug.Normalize(p.ID)
	},
	func(identifier string, p content.Product) bool {
		return slug.Normalize(slug.Deslugify(identifier)) == slug.Normalize(p.Name)
	},
	func(identifier string, p content.Product) bool {
		return slug.Normalize(slug.Slugify(p.Name)) == slug.Normalize(identifier)
	},
}

// resolveProduct searches the union of all product collections in
// category-then-list order.
func resolveProduct(identifier string, products []content.Product) (*content.Product, bool) {
	return firstMatch(identifier, products, productStages)
}
