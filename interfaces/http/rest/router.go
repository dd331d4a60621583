package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/application/services"
	"survey-backend/interfaces/http/rest/handlers"
	"survey-backend/interfaces/http/rest/middleware"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/observability"
	"survey-backend/pkg/ratelimit"
)

// Options configure the HTTP surface.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	// Debug adds stack traces to error responses.
	Debug bool
	// GraphQL is mounted on /graphql when set.
	GraphQL http.Handler
	// RateLimiter throttles API routes by client address when set.
	RateLimiter ratelimit.Limiter
}

// Router creates and configures the HTTP router
type Router struct {
	services  *services.Services
	checker   ports.HealthChecker
	collector *observability.Collector
	tracer    *observability.Tracer
	opts      Options
	logger    *zap.Logger
}

// NewRouter creates a new router instance. collector and tracer may be nil.
func NewRouter(
	svc *services.Services,
	checker ports.HealthChecker,
	collector *observability.Collector,
	tracer *observability.Tracer,
	opts Options,
	logger *zap.Logger,
) *Router {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	return &Router{
		services:  svc,
		checker:   checker,
		collector: collector,
		tracer:    tracer,
		opts:      opts,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()
	errs := apperrors.NewErrorHandler(rt.logger, rt.opts.Debug)

	// Global middleware
	router.Use(rt.tracer.Middleware)
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errs.Middleware)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.collector))
	router.Use(chimiddleware.Timeout(rt.opts.RequestTimeout))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Total-Count", "X-Total-Pages"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errs.HandleStatus(w, r, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errs.HandleStatus(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Health check
	health := handlers.NewHealthHandler(rt.checker, rt.logger)
	router.Get("/", health.Root)
	router.Get("/health", health.Health)
	router.Get("/ready", health.Ready)
	if rt.collector != nil {
		router.Handle("/metrics", rt.collector.Handler())
	}

	svc := rt.services
	router.Group(func(router chi.Router) {
		if rt.opts.RateLimiter != nil {
			router.Use(middleware.RateLimit(rt.opts.RateLimiter, errs, rt.logger))
		}
		rt.mountAPI(router, svc, errs)
	})

	return router
}

func (rt *Router) mountAPI(router chi.Router, svc *services.Services, errs *apperrors.ErrorHandler) {
	router.Route("/customers", handlers.NewCustomerHandler(svc.Customers, errs, rt.logger).Routes)
	router.Route("/surveys", handlers.NewSurveyHandler(svc.Surveys, errs, rt.logger).Routes)
	router.Route("/properties", handlers.NewPropertyHandler(svc.Properties, errs, rt.logger).Routes)
	router.Route("/townships", handlers.NewTownshipHandler(svc.Townships, errs, rt.logger).Routes)
	router.Route("/lookup", handlers.NewLookupHandler(svc.Lookups, errs, rt.logger).Routes)
	router.Route("/user-settings", handlers.NewUserSettingsHandler(svc.UserSettings, errs, rt.logger).Routes)
	router.Route("/board-configurations", handlers.NewBoardHandler(svc.Boards, errs, rt.logger).Routes)

	if rt.opts.GraphQL != nil {
		router.Handle("/graphql", rt.opts.GraphQL)
	}
}
