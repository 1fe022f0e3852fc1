// Package api provides the HTTP API server and status page.
// Uses chi router, tollbooth rate limiting, and Prometheus metrics.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/craftping/mc-status-go/internal/checker"
	"github.com/craftping/mc-status-go/internal/config"
	"github.com/craftping/mc-status-go/internal/metrics"
	"github.com/craftping/mc-status-go/internal/models"
	"github.com/craftping/mc-status-go/internal/tasks"

	_ "github.com/craftping/mc-status-go/internal/api/docs" // swagger docs
)

// APIVersion is the current version of the API
const APIVersion = "1.0.0"

// CheckFunc performs one synchronous status check. Injectable for tests.
type CheckFunc func(ctx context.Context, target models.ServerTarget, timeout time.Duration) models.CheckResult

// Server wraps chi router with the task queue client and the check
// function used by the synchronous endpoint.
type Server struct {
	router      *chi.Mux
	config      *config.APIConfig
	tasksClient tasks.ClientInterface
	checkFn     CheckFunc
}

// NewServer configures middleware stack: tollbooth, chi logging, panic recovery.
func NewServer(cfg *config.APIConfig) *Server {
	s := &Server{router: chi.NewRouter(), config: cfg, checkFn: checker.Check}

	// Tollbooth rate limiter with configurable IP source (RemoteAddr, X-Forwarded-For, etc.)
	// Only enable if RequestsPerSecond > 0 (0 = disabled)
	if cfg.RateLimiting.RequestsPerSecond > 0 {
		lmt := tollbooth.NewLimiter(
			float64(cfg.GetRateLimitRequestsPerSecond()),
			&limiter.ExpirableOptions{DefaultExpirationTTL: 10 * time.Minute},
		)
		lmt.SetBurst(cfg.GetRateLimitBurstSize())

		ipSource := os.Getenv("RATE_LIMIT_IP_SOURCE")
		if ipSource == "" {
			ipSource = "RemoteAddr"
		}
		lmt.SetIPLookup(limiter.IPLookup{Name: ipSource, IndexFromRight: 0})
		lmt.SetMessage(`{"error":"rate limit exceeded"}`)
		lmt.SetMessageContentType("application/json")

		s.router.Use(func(next http.Handler) http.Handler {
			return tollbooth.HTTPMiddleware(lmt)(next)
		})
	}

	// Chi middleware for logging, recovery, request ID, real IP
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)

	s.router.Get("/", s.handleStatusPage)
	s.router.Get("/check", s.handleCheck)
	s.router.Post("/status-check", s.handleStatusCheck)
	s.router.Get("/tasks/{taskID}", s.handleGetTaskStatus)
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Head("/health", s.handleHealthCheck)
	s.router.Get("/status", s.handleHealthCheck)
	s.router.Head("/status", s.handleHealthCheck)
	s.router.Get("/metrics", s.handleMetrics)

	// Swagger UI and OpenAPI endpoints
	s.router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	s.router.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	return s
}

// SetTasksClient injects task queue client (Asynq or in-memory).
func (s *Server) SetTasksClient(c tasks.ClientInterface) { s.tasksClient = c }

// SetCheckFunc overrides the synchronous check implementation (tests).
func (s *Server) SetCheckFunc(fn CheckFunc) { s.checkFn = fn }

// Router exposes chi.Mux for testing.
func (s *Server) Router() http.Handler { return s.router }

// Run starts HTTP server with config-driven timeouts.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.GetServerReadTimeout()) * time.Second,
		WriteTimeout: time.Duration(s.config.GetServerWriteTimeout()) * time.Second,
		IdleTimeout:  time.Duration(s.config.GetServerIdleTimeout()) * time.Second,
	}
	return srv.ListenAndServe()
}

// checkTimeout is the fixed per-check timeout from config.
func (s *Server) checkTimeout() time.Duration {
	return time.Duration(s.config.GetCheckTimeoutMs()) * time.Millisecond
}

// handleCheck performs a synchronous status check
// @Summary Check server status
// @Description Query a Minecraft server synchronously and return its normalized status. Failures are reported inside the result, not as HTTP errors.
// @Tags Status
// @Produce json
// @Param edition query string true "Server edition (java or bedrock)"
// @Param host query string true "Server hostname or IP"
// @Param port query int false "Server port (edition default applied)"
// @Success 200 {object} models.CheckResult "Normalized status check result"
// @Failure 400 {object} models.ErrorResponse "Invalid edition, host, or port"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /check [get]
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	port := 0
	if p := r.URL.Query().Get("port"); p != "" {
		var err error
		port, err = strconv.Atoi(p)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid port")
			return
		}
	}

	target := models.ServerTarget{
		Edition: r.URL.Query().Get("edition"),
		Host:    r.URL.Query().Get("host"),
		Port:    port,
	}
	if err := target.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.APIRequestsTotal.WithLabelValues("check").Inc()

	result := s.checkFn(r.Context(), target, s.checkTimeout())
	respondJSON(w, http.StatusOK, result)
}

// handleStatusCheck submits a status check task for asynchronous processing
// @Summary Submit status check task
// @Description Enqueue a server status check for asynchronous processing. Returns a task ID that can be polled.
// @Tags Status
// @Accept json
// @Produce json
// @Param request body models.StatusCheckRequest true "Status check parameters"
// @Success 200 {object} models.TaskResponse "Task accepted and enqueued"
// @Failure 400 {object} models.ErrorResponse "Invalid request or missing parameters"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 503 {object} models.ErrorResponse "No workers available"
// @Router /status-check [post]
func (s *Server) handleStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req models.StatusCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	metrics.APIRequestsTotal.WithLabelValues("status-check").Inc()

	target, err := req.Target()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Check worker availability - only Asynq mode needs this
	if asynqClient, ok := s.tasksClient.(*tasks.Client); ok {
		if !asynqClient.HasActiveWorkers(r.Context()) {
			respondError(w, http.StatusServiceUnavailable, "no workers available - tasks cannot be processed")
			return
		}
	}

	if s.tasksClient == nil {
		respondError(w, http.StatusInternalServerError, "tasks client not configured")
		return
	}

	id, err := s.tasksClient.EnqueueStatusCheck(r.Context(), target)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.TaskResponse{TaskID: id, Message: "status check enqueued"})
}

// handleGetTaskStatus retrieves the status and result of a submitted task
// @Summary Get task status and result
// @Description Retrieve the status and result of a previously submitted status check task
// @Tags Tasks
// @Produce json
// @Param taskID path string true "Task ID"
// @Success 200 {object} models.TaskStatusResponse "Task found"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks/{taskID} [get]
func (s *Server) handleGetTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if s.tasksClient == nil {
		respondError(w, http.StatusInternalServerError, "tasks client not configured")
		return
	}
	status, err := s.tasksClient.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		if err.Error() == "not found" {
			respondError(w, http.StatusNotFound, "task not found")
		} else {
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	metrics.APIResultPollsTotal.Inc()

	respondJSON(w, http.StatusOK, status)
}

// handleHealthCheck returns degraded if Asynq workers unavailable
// @Summary Health check
// @Description Check if the API service is running and workers are available
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is healthy or degraded"
// @Router /health [get]
// @Router /status [get]
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.HealthResponse{Status: "ok"}

	if asynqClient, ok := s.tasksClient.(*tasks.Client); ok {
		if !asynqClient.HasActiveWorkers(r.Context()) {
			health.Status = "degraded"
			health.Warning = "no active workers detected"
		}
	}

	if health.Status == "degraded" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}

	respondJSON(w, http.StatusOK, health)
}

// handleMetrics exposes Prometheus metrics
// @Summary Prometheus metrics
// @Description Expose application metrics in Prometheus format
// @Tags System
// @Produce text/plain
// @Success 200 {string} string "Prometheus metrics"
// @Router /metrics [get]
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// LoadConfigFromEnv provides default config path fallback.
func LoadConfigFromEnv() string {
	p := os.Getenv("CONFIG_PATH")
	if p == "" {
		p = "conf/config.yaml"
	}
	return p
}
