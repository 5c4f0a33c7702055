package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/altivento/altivento-backend/api/controllers"
	"github.com/altivento/altivento-backend/api/middleware"
	"github.com/altivento/altivento-backend/internal/catalog"
	"github.com/altivento/altivento-backend/internal/content"
	"github.com/altivento/altivento-backend/internal/weddings"
	"github.com/altivento/altivento-backend/pkg/config"
	"github.com/altivento/altivento-backend/pkg/logger"
	"github.com/altivento/altivento-backend/pkg/metrics"
	"github.com/altivento/altivento-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	contentStore *content.Store,
	redisClient *redis.Client,
	mtr *metrics.APIMetrics,
	gatherer prometheus.Gatherer,
	catalogService catalog.Service,
	weddingsService weddings.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(mtr),
		middleware.CORS(),
	)

	quoteLimiter := func(next http.Handler) http.Handler { return next }
	if redisClient != nil {
		policy := middleware.NewRateLimitPolicy("quote", cfg.QuoteRate.Window, cfg.QuoteRate.IPLimit)
		quoteLimiter = middleware.RateLimit(policy, redisClient, logg)
	}

	readyDeps := []controllers.Pinger{}
	if contentStore != nil {
		readyDeps = append(readyDeps, contentStore)
	}
	if redisClient != nil {
		readyDeps = append(readyDeps, redisClient)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readyDeps...))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(catalogService, logg))
			r.Get("/{identifier}", controllers.GetCategory(catalogService, logg))
			r.Get("/{identifier}/products", controllers.ListCategoryProducts(catalogService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/{identifier}", controllers.GetProduct(catalogService, logg))
			r.Get("/{identifier}/related", controllers.ListRelatedProducts(catalogService, logg))
			r.With(quoteLimiter).Post("/{identifier}/quote", controllers.QuoteProduct(catalogService, logg))
		})

		r.Route("/weddings", func(r chi.Router) {
			r.Get("/", controllers.GetWeddingPackages(weddingsService, logg))
			r.With(quoteLimiter).Post("/quote", controllers.QuoteWedding(weddingsService, logg))
		})
	})

	return r
}
