package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/kabsdesign/studio/pkg/auth"
	"github.com/kabsdesign/studio/pkg/catalog"
	"github.com/kabsdesign/studio/pkg/httputil"
	"github.com/kabsdesign/studio/pkg/middleware"
	"github.com/kabsdesign/studio/pkg/observability"
	"github.com/kabsdesign/studio/pkg/projects"
	"github.com/kabsdesign/studio/pkg/render"
)

// maxRequestBody caps request payloads. Design documents can grow to
// many megabytes on large plans, so the limit is generous.
const maxRequestBody = 25 << 20

// Dependencies carries everything the server needs
type Dependencies struct {
	DB          *sql.DB
	Logger      *logrus.Logger
	Metrics     *observability.Metrics
	Tokens      *auth.TokenService
	Auth        *auth.Service
	Projects    *projects.Service
	Catalog     *catalog.Store
	Render      *render.Gateway
	CORSOrigins []string
}

// Server represents our API server
type Server struct {
	router  *mux.Router
	handler http.Handler
	logger  *logrus.Logger

	authHandlers    *AuthHandlers
	projectHandlers *ProjectHandlers
	catalogHandlers *CatalogHandlers
	renderHandlers  *RenderHandlers
	health          *observability.HealthChecker
}

// NewServer creates a new API server
func NewServer(deps Dependencies) *Server {
	s := &Server{
		router:          mux.NewRouter(),
		logger:          deps.Logger,
		authHandlers:    NewAuthHandlers(deps.Auth),
		projectHandlers: NewProjectHandlers(deps.Projects),
		catalogHandlers: NewCatalogHandlers(deps.Catalog),
		renderHandlers:  NewRenderHandlers(deps.Render),
		health:          observability.NewHealthChecker(deps.DB),
	}
	s.setupRoutes(deps)
	return s
}

// setupRoutes configures all the API routes. CORS wraps the router from
// the outside so preflight requests are answered even for routes that
// only declare other methods.
func (s *Server) setupRoutes(deps Dependencies) {
	if deps.Metrics != nil {
		s.router.Use(deps.Metrics.Middleware)
		metricsHandler := deps.Metrics.Handler()
		s.router.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
			// Pool gauges are sampled per scrape rather than pushed.
			if deps.DB != nil {
				deps.Metrics.ObserveDBStats(deps.DB.Stats())
			}
			metricsHandler.ServeHTTP(w, r)
		}).Methods("GET")
	}

	// Service descriptor and health probes
	s.router.HandleFunc("/", s.root).Methods("GET")
	s.router.HandleFunc("/health", s.health.Readiness).Methods("GET")
	s.router.HandleFunc("/health/live", s.health.Liveness).Methods("GET")

	// Public auth routes
	s.authHandlers.RegisterRoutes(s.router)

	// Everything else requires a bearer token
	authMW := middleware.NewAuthMiddleware(deps.Tokens)
	protected := s.router.PathPrefix("/api").Subrouter()
	protected.Use(authMW.Handler)

	s.projectHandlers.RegisterRoutes(protected)
	s.catalogHandlers.RegisterRoutes(protected)
	s.renderHandlers.RegisterRoutes(protected)

	s.handler = httputil.Chain(
		httputil.RecoveryMiddleware(deps.Logger),
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(deps.Logger),
		httputil.CORSMiddleware(deps.CORSOrigins),
		httputil.MaxBytesMiddleware(maxRequestBody),
	)(s.router)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Router exposes the underlying router for route inspection in tests
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, map[string]interface{}{
		"service":   "KABS Studio API",
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
