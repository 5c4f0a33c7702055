package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/altivento/altivento-backend/api/responses"
	"github.com/altivento/altivento-backend/api/validators"
	"github.com/altivento/altivento-backend/internal/catalog"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
	"github.com/altivento/altivento-backend/pkg/logger"
)

const (
	defaultRelatedLimit = 4
	maxRelatedLimit     = 12
)

// GetProduct resolves a product from a slug, id, or display name.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		identifier := chi.URLParam(r, "identifier")
		product, err := svc.ResolveProduct(r.Context(), identifier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ListRelatedProducts returns products to cross-sell next to the given one.
func ListRelatedProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultRelatedLimit, 1, maxRelatedLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identifier := chi.URLParam(r, "identifier")
		related, err := svc.RelatedProducts(r.Context(), identifier, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, related)
	}
}

type productQuoteRequest struct {
	Units int `json:"units" validate:"required,min=1"`
}

// QuoteProduct prices a unit count against a product's published pricing.
func QuoteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload productQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		identifier := chi.URLParam(r, "identifier")
		quote, err := svc.QuoteProduct(r.Context(), identifier, payload.Units)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
