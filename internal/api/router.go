package api

import (
	"time"

	"github.com/alias8/invoices-demo-be/internal/api/handlers"
	"github.com/alias8/invoices-demo-be/internal/auth"
	"github.com/alias8/invoices-demo-be/internal/config"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	userService services.UserServiceProvider,
	accountService services.AccountServiceProvider,
	customerService services.CustomerServiceProvider,
	invoiceService services.InvoiceServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	r.Route("/api", func(r chi.Router) {
		// Every API request runs inside a session; the cookie is minted on
		// first contact.
		r.Use(auth.SessionMiddleware([]byte(cfg.SessionSecret), cfg.SessionTTL))

		if cfg.SimulateLatency {
			r.Use(latency(100*time.Millisecond, 800*time.Millisecond))
		}

		r.Post("/login", authHandler.Login)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", accountHandler.GetAll)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", accountHandler.Update)
				r.Delete("/", accountHandler.Delete)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.GetAll)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", customerHandler.Update)
				r.Delete("/", customerHandler.Delete)
			})
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", invoiceHandler.GetAll)
			r.Get("/{id}", invoiceHandler.Get)
		})
	})

	return r
}
