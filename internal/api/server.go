package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/edvin/customerservice/internal/api/docs"
	"github.com/edvin/customerservice/internal/api/handler"
	mw "github.com/edvin/customerservice/internal/api/middleware"
	"github.com/edvin/customerservice/internal/api/response"
	"github.com/edvin/customerservice/internal/config"
	"github.com/edvin/customerservice/internal/core"
	"github.com/edvin/customerservice/internal/model"
)

// Pool is the database handle the server needs. *pgxpool.Pool satisfies it.
type Pool interface {
	core.DB
	Ping(ctx context.Context) error
}

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool Pool, services *core.Services, cfg *config.Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: services,
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(chimw.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes() {
	// Prometheus metrics, unless served on a separate listener
	if s.cfg.MetricsListenAddr == "" {
		s.router.Handle("/metrics", promhttp.Handler())
	}

	// Health checks
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	// OpenAPI spec (public, no auth)
	s.router.Get("/docs/openapi.json", s.handleOpenAPI)

	s.router.Route("/api/customers", func(r chi.Router) {
		r.Use(mw.Auth(s.services.Auth))

		customer := handler.NewCustomer(s.services.Customer)
		r.With(mw.RequireAuthority(model.AuthorityUser)).Get("/", customer.List)
		r.Get("/{id}", customer.Get)

		session := handler.NewSession()
		r.Get("/mySession", session.Get)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	status := http.StatusOK

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["db"] = "ok"
	}

	response.WriteJSON(w, status, checks)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	doc := docs.SwaggerInfo.ReadDoc()
	if !json.Valid([]byte(doc)) {
		response.WriteError(w, http.StatusInternalServerError, "invalid openapi document")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
