package catalog

import "github.com/altivento/altivento-backend/internal/content"

// relatedTo builds the related-products list for a resolved product:
// explicitly declared associations first, then same-category back-fill in
// stored order. The result never contains the source product and never a
// duplicate id.
func relatedTo(product *content.Product, snap *content.Snapshot, limit int) []content.Product {
	if product == nil || limit <= 0 {
		return nil
	}

	allProducts := snap.AllProducts()
	sameCategory := snap.Products(storageKeyFor(product.Category, snap.Categories))

	seen := map[string]struct{}{product.ID: {}}
	related := make([]content.Product, 0, limit)

	for _, declaredID := range product.RelatedProducts {
		if len(related) == limit {
			return related
		}
		candidate, ok := resolveProduct(declaredID, allProducts)
		if !ok {
			// Stale associations are content bugs, not request errors.
			continue
		}
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}
		related = append(related, *candidate)
	}

	for _, candidate := range sameCategory {
		if len(related) == limit {
			break
		}
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}
		related = append(related, candidate)
	}

	return related
}
