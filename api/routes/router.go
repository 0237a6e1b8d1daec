package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coralshopping/coral-backend/api/controllers"
	"github.com/coralshopping/coral-backend/api/middleware"
	"github.com/coralshopping/coral-backend/internal/analytics"
	"github.com/coralshopping/coral-backend/internal/catalog"
	"github.com/coralshopping/coral-backend/internal/customers"
	"github.com/coralshopping/coral-backend/internal/diagnostics"
	"github.com/coralshopping/coral-backend/internal/orders"
	"github.com/coralshopping/coral-backend/internal/recommend"
	"github.com/coralshopping/coral-backend/internal/support"
	"github.com/coralshopping/coral-backend/pkg/logger"
	"github.com/coralshopping/coral-backend/pkg/metrics"
	pkgredis "github.com/coralshopping/coral-backend/pkg/redis"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Catalog     catalog.Service
	Customers   customers.Service
	Orders      orders.Service
	Recommend   recommend.Service
	Support     support.Service
	Analytics   analytics.Service
	Diagnostics diagnostics.Service
}

// NewRouter assembles the public HTTP surface. idem may be nil when no cache
// is configured; creation endpoints then skip idempotency replay.
func NewRouter(
	logg *logger.Logger,
	reg *prometheus.Registry,
	idem pkgredis.IdempotencyStore,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(reg)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
		middleware.Idempotency(idem, logg),
	)

	r.Get("/", controllers.Root())
	r.Get("/schema", controllers.Schema())
	r.Get("/test", controllers.Diagnostics(svcs.Diagnostics, logg))

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", controllers.CreateCustomer(svcs.Customers, logg))
		r.Get("/", controllers.ListCustomers(svcs.Customers, logg))
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", controllers.CreateProduct(svcs.Catalog, logg))
		r.Get("/", controllers.ListProducts(svcs.Catalog, logg))
	})

	r.Post("/recommendations", controllers.Recommend(svcs.Recommend, logg))
	r.Post("/compare", controllers.CompareProducts(svcs.Catalog, logg))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", controllers.CreateOrder(svcs.Orders, logg))
		r.Get("/", controllers.ListOrders(svcs.Orders, logg))
	})

	r.Post("/analytics", controllers.TrackEvent(svcs.Analytics, logg))
	r.Post("/support", controllers.CreateTicket(svcs.Support, logg))

	if reg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return r
}
