package catalog

import (
	"github.com/altivento/altivento-backend/internal/content"
	"github.com/altivento/altivento-backend/pkg/slug"
)

// storageKeyFor maps an arbitrary category identifier to the physical key
// its product collection is stored under. The alias table is consulted
// before any resolution because the stored keys predate the slug naming
// convention and cannot be derived.
func storageKeyFor(identifier string, categories []content.Category) string {
	if key, ok := content.LookupStorageKey(identifier); ok {
		return key
	}
	if key, ok := content.LookupStorageKey(slug.Normalize(identifier)); ok {
		return key
	}
	if category, ok := resolveCategory(identifier, categories); ok {
		if key, ok := content.LookupStorageKey(category.ID); ok {
			return key
		}
		if key, ok := content.LookupStorageKey(slug.Normalize(category.ID)); ok {
			return key
		}
		return slug.Normalize(category.ID)
	}
	return slug.Normalize(identifier)
}
