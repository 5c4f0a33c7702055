// Package content loads the static catalog collections shipped with the
// deployment and exposes them as an immutable in-memory snapshot. It plays
// the role the filesystem content directory played on the old site: data
// changes by redeploying, never at runtime.
package content

// Category is one of the fixed rental categories. Slug is the canonical
// routing identifier; it may legitimately differ from a slugified ID because
// of historical renames.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	FeaturedImage string `json:"featuredImage"`
	Slug          string `json:"slug"`
	Featured      bool   `json:"featured,omitempty"`
}

// Product is a rentable item. IDs are human-readable strings carried over
// from the legacy content ("carpa plafon liso blanco"), not generated slugs.
type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Images          []string       `json:"images"`
	Category        string         `json:"category"`
	Specifications  map[string]any `json:"specifications"`
	Pricing         *PricingInfo   `json:"pricing,omitempty"`
	Features        []string       `json:"features,omitempty"`
	RelatedProducts []string       `json:"relatedProducts,omitempty"`
}

// PricingInfo carries optional per-unit pricing for a product. Products
// without it are quoted on consultation only.
type PricingInfo struct {
	BasePrice          float64             `json:"basePrice,omitempty"`
	Unit               string              `json:"unit,omitempty"`
	PricePerUnit       float64             `json:"pricePerUnit,omitempty"`
	MinUnits           int                 `json:"minUnits,omitempty"`
	DiscountThresholds []DiscountThreshold `json:"discountThresholds,omitempty"`
}

// DiscountThreshold grants a percentage discount at and above a unit count.
type DiscountThreshold struct {
	Units              int     `json:"units"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// VenueInfo describes the wedding venue with its base headcount pricing.
type VenueInfo struct {
	Name             string   `json:"name"`
	BasePrice        int      `json:"basePrice"`
	BasePax          int      `json:"basePax"`
	PricePerExtraPax int      `json:"pricePerExtraPax"`
	Description      string   `json:"description"`
	Image            string   `json:"image,omitempty"`
	Features         []string `json:"features"`
}

// WeddingPackage is one pricing tier. Features is a fixed-length matrix
// aligned across tiers; "-" entries mean "not included at this tier".
// BasePrice is keyed by guest-count bucket ("150", "200", ...).
type WeddingPackage struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Features    []string       `json:"features"`
	BasePrice   map[string]int `json:"basePrice"`
}

// WeddingAddOn is an independently priced optional enhancement.
type WeddingAddOn struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image,omitempty"`
}

// WeddingPackageData bundles everything the wedding calculator consumes.
type WeddingPackageData struct {
	Venue             VenueInfo        `json:"venue"`
	Packages          []WeddingPackage `json:"packages"`
	AddOns            []WeddingAddOn   `json:"addOns"`
	GuestCountOptions []int            `json:"guestCountOptions"`
}
