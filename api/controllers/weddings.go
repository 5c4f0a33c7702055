package controllers

import (
	"net/http"

	"github.com/altivento/altivento-backend/api/responses"
	"github.com/altivento/altivento-backend/api/validators"
	"github.com/altivento/altivento-backend/internal/weddings"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
	"github.com/altivento/altivento-backend/pkg/logger"
)

// GetWeddingPackages returns the venue, package tiers, add-ons, and guest
// count options the budget calculator works from.
func GetWeddingPackages(svc weddings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "weddings service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.PackageData(r.Context()))
	}
}

type weddingQuoteRequest struct {
	SelectedPackage string   `json:"selectedPackage" validate:"required"`
	GuestCount      int      `json:"guestCount" validate:"required,min=1"`
	SelectedAddOns  []string `json:"selectedAddOns"`
}

// QuoteWedding computes a price breakdown for a package selection.
func QuoteWedding(svc weddings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "weddings service unavailable"))
			return
		}

		var payload weddingQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Quote(r.Context(), weddings.CalculatorState{
			SelectedPackage: payload.SelectedPackage,
			GuestCount:      payload.GuestCount,
			SelectedAddOns:  payload.SelectedAddOns,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
