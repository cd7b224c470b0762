// Package server exposes the control API of the bot.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MarketBot_Go/internal/database"
	"github.com/osse101/MarketBot_Go/internal/handler"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/metrics"
)

// Deps are the services behind the routes. DBPool may be nil.
type Deps struct {
	DBPool     database.Pool
	Controller handler.LoopController
	Items      handler.ItemLister
	Bounds     handler.BoundsSaver
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(apiKey string, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/bot", func(r chi.Router) {
			r.Get("/status", handler.HandleBotStatus(deps.Controller))
			r.Post("/start", handler.HandleBotStart(deps.Controller))
			r.Post("/stop", handler.HandleBotStop(deps.Controller))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(deps.Items))
			r.Put("/{"+handler.ParamItemID+"}/bounds", handler.HandleUpdateBounds(deps.Items, deps.Bounds))
		})
	})

	return r
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
		statusCode:     http.StatusOK,
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
		// health checks and scrapes are too frequent to log
		for _, path := range PublicPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
