package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/altivento/altivento-backend/internal/catalog"
	"github.com/altivento/altivento-backend/internal/content"
	"github.com/altivento/altivento-backend/internal/weddings"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
	"github.com/altivento/altivento-backend/pkg/types"
)

type stubCatalogService struct {
	categories []content.Category
	products   map[string]content.Product
	related    []content.Product
	quote      *catalog.ProductQuote
	quoteErr   error
}

func (s *stubCatalogService) Categories(_ context.Context, featuredOnly bool) []content.Category {
	if !featuredOnly {
		return s.categories
	}
	var out []content.Category
	for _, category := range s.categories {
		if category.Featured {
			out = append(out, category)
		}
	}
	return out
}

func (s *stubCatalogService) ResolveCategory(_ context.Context, identifier string) (content.Category, error) {
	for _, category := range s.categories {
		if category.Slug == identifier {
			return category, nil
		}
	}
	return content.Category{}, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
}

func (s *stubCatalogService) ProductsByCategory(_ context.Context, identifier string) ([]content.Product, error) {
	if _, err := s.ResolveCategory(context.Background(), identifier); err != nil {
		return nil, err
	}
	var out []content.Product
	for _, product := range s.products {
		out = append(out, product)
	}
	return out, nil
}

func (s *stubCatalogService) ResolveProduct(_ context.Context, identifier string) (content.Product, error) {
	if product, ok := s.products[identifier]; ok {
		return product, nil
	}
	return content.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubCatalogService) RelatedProducts(_ context.Context, productID string, limit int) ([]content.Product, error) {
	if limit < len(s.related) {
		return s.related[:limit], nil
	}
	return s.related, nil
}

func (s *stubCatalogService) QuoteProduct(_ context.Context, identifier string, units int) (*catalog.ProductQuote, error) {
	if s.quoteErr != nil {
		return nil, s.quoteErr
	}
	if _, ok := s.products[identifier]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.quote, nil
}

type stubWeddingsService struct {
	data     content.WeddingPackageData
	result   weddings.CalculationResult
	quoteErr error
}

func (s *stubWeddingsService) PackageData(_ context.Context) content.WeddingPackageData {
	return s.data
}

func (s *stubWeddingsService) Quote(_ context.Context, _ weddings.CalculatorState) (weddings.CalculationResult, error) {
	if s.quoteErr != nil {
		return weddings.CalculationResult{}, s.quoteErr
	}
	return s.result, nil
}

func testCatalogStub() *stubCatalogService {
	return &stubCatalogService{
		categories: []content.Category{
			{ID: "Carpas", Name: "Carpas", Slug: "carpas", Featured: true},
			{ID: "Templetes", Name: "Templetes", Slug: "templetes"},
		},
		products: map[string]content.Product{
			"carpa-transparente": {ID: "carpa transparente", Name: "Carpa Transparente", Category: "Carpas"},
		},
		related: []content.Product{
			{ID: "carpa alemana", Name: "Carpa Alemana", Category: "Carpas"},
		},
	}
}

func execute(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()
	var envelope types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope.Error
}

func catalogRouter(svc catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/categories", ListCategories(svc, nil))
	r.Get("/categories/{identifier}", GetCategory(svc, nil))
	r.Get("/categories/{identifier}/products", ListCategoryProducts(svc, nil))
	r.Get("/products/{identifier}", GetProduct(svc, nil))
	r.Get("/products/{identifier}/related", ListRelatedProducts(svc, nil))
	r.Post("/products/{identifier}/quote", QuoteProduct(svc, nil))
	return r
}
