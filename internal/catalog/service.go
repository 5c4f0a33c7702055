package catalog

import (
	"context"
	"fmt"

	"github.com/altivento/altivento-backend/internal/content"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
	"github.com/altivento/altivento-backend/pkg/logger"
	"github.com/altivento/altivento-backend/pkg/metrics"
)

// Service exposes catalog lookup operations over the loaded content
// snapshot. Every method is a pure read; the service holds no mutable
// state and is safe for concurrent use.
type Service interface {
	Categories(ctx context.Context, featuredOnly bool) []content.Category
	ResolveCategory(ctx context.Context, identifier string) (content.Category, error)
	ProductsByCategory(ctx context.Context, identifier string) ([]content.Product, error)
	ResolveProduct(ctx context.Context, identifier string) (content.Product, error)
	RelatedProducts(ctx context.Context, productID string, limit int) ([]content.Product, error)
	QuoteProduct(ctx context.Context, identifier string, units int) (*ProductQuote, error)
}

type service struct {
	snap *content.Snapshot
	logg *logger.Logger
	mtr  *metrics.APIMetrics
}

// NewService constructs a catalog service over an immutable snapshot.
func NewService(snap *content.Snapshot, logg *logger.Logger, mtr *metrics.APIMetrics) (Service, error) {
	if snap == nil {
		return nil, fmt.Errorf("content snapshot required")
	}
	return &service{snap: snap, logg: logg, mtr: mtr}, nil
}

func (s *service) Categories(ctx context.Context, featuredOnly bool) []content.Category {
	if !featuredOnly {
		out := make([]content.Category, len(s.snap.Categories))
		copy(out, s.snap.Categories)
		return out
	}
	var out []content.Category
	for _, category := range s.snap.Categories {
		if category.Featured {
			out = append(out, category)
		}
	}
	return out
}

func (s *service) ResolveCategory(ctx context.Context, identifier string) (content.Category, error) {
	category, ok := resolveCategory(identifier, s.snap.Categories)
	if !ok {
		s.mtr.IncResolution("category", "miss")
		return content.Category{}, pkgerrors.New(pkgerrors.CodeNotFound, "category not found").
			WithDetails(map[string]any{"identifier": identifier})
	}
	s.mtr.IncResolution("category", "hit")
	return *category, nil
}

func (s *service) ProductsByCategory(ctx context.Context, identifier string) ([]content.Product, error) {
	category, err := s.ResolveCategory(ctx, identifier)
	if err != nil {
		return nil, err
	}

	key := storageKeyFor(category.ID, s.snap.Categories)
	products := s.snap.Products(key)
	if len(products) == 0 && s.logg != nil {
		warnCtx := s.logg.WithStorageKey(s.logg.WithCategory(ctx, category.ID), key)
		s.logg.Warn(warnCtx, "catalog.category.empty")
	}

	out := make([]content.Product, len(products))
	copy(out, products)
	return out, nil
}

func (s *service) ResolveProduct(ctx context.Context, identifier string) (content.Product, error) {
	product, ok := resolveProduct(identifier, s.snap.AllProducts())
	if !ok {
		s.mtr.IncResolution("product", "miss")
		return content.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"identifier": identifier})
	}
	s.mtr.IncResolution("product", "hit")
	return *product, nil
}

// RelatedProducts returns up to limit products related to the given one.
// An unresolvable product id yields an empty list, not an error: related
// listings are decoration, never a reason to fail a page.
func (s *service) RelatedProducts(ctx context.Context, productID string, limit int) ([]content.Product, error) {
	product, ok := resolveProduct(productID, s.snap.AllProducts())
	if !ok {
		return []content.Product{}, nil
	}
	return relatedTo(product, s.snap, limit), nil
}

func (s *service) QuoteProduct(ctx context.Context, identifier string, units int) (*ProductQuote, error) {
	product, err := s.ResolveProduct(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return quoteProduct(&product, units)
}
