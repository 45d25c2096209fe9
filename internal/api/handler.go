package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"posadmin/m/domain"
	"posadmin/m/internal/service"
)

type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, in service.PersonInput) (domain.Customer, error)
	Update(ctx context.Context, id int64, in service.PersonInput) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CashierService interface {
	List(ctx context.Context) ([]domain.Cashier, error)
	Get(ctx context.Context, id int64) (*domain.Cashier, error)
	Create(ctx context.Context, in service.PersonInput) (domain.Cashier, error)
	Update(ctx context.Context, id int64, in service.PersonInput) (domain.Cashier, error)
	Delete(ctx context.Context, id int64) error
}

type SupplierService interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	Get(ctx context.Context, id int64) (*domain.Supplier, error)
	Create(ctx context.Context, in service.SupplierInput) (domain.Supplier, error)
	Update(ctx context.Context, id int64, in service.SupplierInput) (domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in service.ProductInput) (domain.Product, error)
	Update(ctx context.Context, id int64, in service.ProductInput) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type SaleService interface {
	List(ctx context.Context) ([]domain.Sale, error)
	Get(ctx context.Context, id int64) (*domain.Sale, error)
	Create(ctx context.Context, in service.SaleInput) (domain.Sale, error)
	Update(ctx context.Context, id int64, in service.SaleInput) (domain.Sale, error)
	Delete(ctx context.Context, id int64) error
}

type ReportService interface {
	Rows(ctx context.Context, query string) ([]domain.ReportRow, error)
}

// Pinger reports database reachability for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the handlers call into.
type Deps struct {
	Customers CustomerService
	Cashiers  CashierService
	Suppliers SupplierService
	Products  ProductService
	Sales     SaleService
	Report    ReportService
	DB        Pinger
}

// FromServices fills Deps from the service aggregate.
func FromServices(svc *service.Services, db Pinger) Deps {
	return Deps{
		Customers: svc.Customers,
		Cashiers:  svc.Cashiers,
		Suppliers: svc.Suppliers,
		Products:  svc.Products,
		Sales:     svc.Sales,
		Report:    svc.Report,
		DB:        db,
	}
}

type Options struct {
	AllowedOrigins []string
	// AuthSecret enables HS256 bearer authentication on /api when set.
	AuthSecret string
	// Registry receives the HTTP metrics; a private registry is used when nil.
	Registry *prometheus.Registry
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	Deps
	secret   string
	origins  []string
	registry *prometheus.Registry
	metrics  *metrics
	now      func() time.Time
}

// New constructs a Handler.
func New(deps Deps, opts Options) *Handler {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{
		Deps:     deps,
		secret:   opts.AuthSecret,
		origins:  origins,
		registry: reg,
		metrics:  newMetrics(reg),
		now:      time.Now,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(h.metrics.middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		if h.secret != "" {
			r.Use(h.authMiddleware)
		}

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)
			r.Get("/{id}", h.getCustomer)
			r.Put("/{id}", h.updateCustomer)
			r.Delete("/{id}", h.deleteCustomer)
		})

		r.Route("/cashiers", func(r chi.Router) {
			r.Get("/", h.listCashiers)
			r.Post("/", h.createCashier)
			r.Get("/{id}", h.getCashier)
			r.Put("/{id}", h.updateCashier)
			r.Delete("/{id}", h.deleteCashier)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", h.listSuppliers)
			r.Post("/", h.createSupplier)
			r.Get("/{id}", h.getSupplier)
			r.Put("/{id}", h.updateSupplier)
			r.Delete("/{id}", h.deleteSupplier)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.listSales)
			r.Post("/", h.createSale)
			r.Get("/{id}", h.getSale)
			r.Put("/{id}", h.updateSale)
			r.Delete("/{id}", h.deleteSale)
		})

		r.Get("/sales-report", h.salesReport)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Ping(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
