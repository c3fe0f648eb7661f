package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lkacz/PersonalFreedom-sub001/internal/database"
	"github.com/lkacz/PersonalFreedom-sub001/internal/handler"
	"github.com/lkacz/PersonalFreedom-sub001/internal/item"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	profileService profile.Service
	catalog        item.Catalog
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, profileService profile.Service, catalog item.Catalog) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(requestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/state", func(r chi.Router) {
			r.Get("/", handler.HandleGetState(profileService))
			r.Get("/inventory", handler.HandleGetInventory(profileService))
			r.Get("/equipment", handler.HandleGetEquipment(profileService))
		})

		r.Post("/rewards/award", handler.HandleAwardSessionRewards(profileService))

		r.Route("/coins", func(r chi.Router) {
			r.Post("/add", handler.HandleAddCoins(profileService))
			r.Post("/spend", handler.HandleSpendCoins(profileService))
		})

		r.Route("/luck", func(r chi.Router) {
			r.Post("/add", handler.HandleAddLuck(profileService))
			r.Post("/decay", handler.HandleDecayLuck(profileService))
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/sell", handler.HandleSellItems(profileService))
			r.Post("/merge", handler.HandleMergeItems(profileService))
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Post("/equip", handler.HandleEquip(profileService))
			r.Post("/unequip", handler.HandleUnequip(profileService))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/profile/reset", handler.HandleResetProfile(profileService))
			r.Post("/catalog/reload", handler.HandleReloadCatalog(catalog))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		profileService: profileService,
		catalog:        catalog,
	}
}

// requestSizeLimitMiddleware rejects bodies larger than the limit
func requestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Scope a request ID into the context
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
