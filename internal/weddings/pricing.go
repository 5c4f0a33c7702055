package weddings

import (
	"strconv"

	"github.com/altivento/altivento-backend/internal/content"
)

// CalculatorState is one budget calculation request: a package tier, a
// guest-count bucket, and zero or more add-on ids.
type CalculatorState struct {
	SelectedPackage string   `json:"selectedPackage"`
	GuestCount      int      `json:"guestCount"`
	SelectedAddOns  []string `json:"selectedAddOns"`
}

// CalculationResult is the derived price breakdown. All amounts are
// non-negative integer MXN and TotalPrice is always the sum of the parts.
type CalculationResult struct {
	PackagePrice int `json:"packagePrice"`
	VenuePrice   int `json:"venuePrice"`
	AddOnsPrice  int `json:"addOnsPrice"`
	TotalPrice   int `json:"totalPrice"`
}

// Calculate prices a wedding selection against the static catalog. It is a
// pure function of its inputs and safe to call concurrently.
//
// Missing data degrades to zero instead of failing: an unknown package or a
// bucket the package has no price for yields packagePrice 0, and unresolved
// add-on ids are skipped. Callers that want hard failures validate the
// state before calling (the service layer does).
func Calculate(state CalculatorState, data content.WeddingPackageData) CalculationResult {
	packagePrice := 0
	for _, pkg := range data.Packages {
		if pkg.ID == state.SelectedPackage {
			packagePrice = pkg.BasePrice[strconv.Itoa(state.GuestCount)]
			break
		}
	}

	venuePrice := data.Venue.BasePrice
	if extra := state.GuestCount - data.Venue.BasePax; extra > 0 {
		venuePrice += extra * data.Venue.PricePerExtraPax
	}

	addOnsPrice := 0
	for _, id := range state.SelectedAddOns {
		for _, addOn := range data.AddOns {
			if addOn.ID == id {
				addOnsPrice += addOn.Price
				break
			}
		}
	}

	return CalculationResult{
		PackagePrice: packagePrice,
		VenuePrice:   venuePrice,
		AddOnsPrice:  addOnsPrice,
		TotalPrice:   packagePrice + venuePrice + addOnsPrice,
	}
}
