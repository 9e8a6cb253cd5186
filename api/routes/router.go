package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dailyneed/storefront-backend/api/controllers"
	"github.com/dailyneed/storefront-backend/api/middleware"
	"github.com/dailyneed/storefront-backend/internal/cart"
	"github.com/dailyneed/storefront-backend/internal/catalog"
	"github.com/dailyneed/storefront-backend/internal/session"
	"github.com/dailyneed/storefront-backend/pkg/config"
	"github.com/dailyneed/storefront-backend/pkg/db"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"github.com/dailyneed/storefront-backend/pkg/metrics"
	"github.com/dailyneed/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	catalogService catalog.Service,
	cartService cart.Service,
	sessionService session.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogBrowse(catalogService, logg))
			r.Get("/facets", controllers.CatalogFacets(catalogService, logg))
			r.Get("/{productId}", controllers.CatalogGet(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Route("/items/{productId}", func(r chi.Router) {
				r.Post("/add", controllers.CartAdd(cartService, logg))
				r.Post("/increase", controllers.CartIncrease(cartService, logg))
				r.Post("/decrease", controllers.CartDecrease(cartService, logg))
			})
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionGet(sessionService, logg))
			r.Post("/login", controllers.SessionLogin(sessionService, logg))
			r.Patch("/user", controllers.SessionUpdateUser(sessionService, logg))
			r.Post("/logout", controllers.SessionLogout(sessionService, logg))
		})
	})

	return r
}
