package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	core_port "github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthChecker - то, что /health проверяет перед ответом 200
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ServerConfig - параметры HTTP-сервера
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// Server - REST API сервиса объявлений
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(cfg ServerConfig, handlers *PropertyHandler, health HealthChecker, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, handlers, health, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// NewRouter собирает маршруты и middleware. Вынесен отдельно для тестов.
func NewRouter(cfg ServerConfig, handlers *PropertyHandler, health HealthChecker, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		r.Use(NewHTTPMetrics(registry).Middleware)
	}

	r.Use(middleware.Recoverer)

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", contextkeys.TraceIDHeader},
		ExposedHeaders: []string{contextkeys.TraceIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Property Management API is running!"})
	})
	r.Get("/health", healthHandler(health))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/", handlers.ListProperties)
		r.Post("/", handlers.CreateProperty)
		r.Get("/{id}", handlers.GetProperty)
		r.Put("/{id}", handlers.UpdateProperty)
		r.Delete("/{id}", handlers.DeleteProperty)
	})

	return r
}

func healthHandler(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := health.Ping(ctx); err != nil {
			RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Start запускает HTTP-сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
