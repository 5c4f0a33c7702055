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

// ListCategories returns all categories, optionally only the featured ones.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		featuredOnly, err := validators.ParseQueryBool(r, "featured", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Categories(r.Context(), featuredOnly))
	}
}

// GetCategory resolves a category from a slug, id, or legacy identifier.
func GetCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		identifier := chi.URLParam(r, "identifier")
		category, err := svc.ResolveCategory(r.Context(), identifier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

// ListCategoryProducts returns the product collection behind a category.
func ListCategoryProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		identifier := chi.URLParam(r, "identifier")
		products, err := svc.ProductsByCategory(r.Context(), identifier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}
