package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/platinummonkey/bookstand/pkg/catalog"
	"github.com/platinummonkey/bookstand/pkg/httputil"
	"github.com/platinummonkey/bookstand/pkg/identity"
	"github.com/platinummonkey/bookstand/pkg/middleware"
	"github.com/platinummonkey/bookstand/pkg/observability"
	"github.com/platinummonkey/bookstand/pkg/reviews"
)

// maxRequestBody caps request bodies; review texts and credentials are small
const maxRequestBody = 64 * 1024

// ServerConfig holds the dependencies for the API server
type ServerConfig struct {
	Books   *catalog.Store
	Users   *identity.Registry
	Reviews *reviews.Ledger
	Issuer  *identity.Issuer
	Logger  *observability.Logger

	// Metrics may be nil when the metrics endpoint is disabled
	Metrics *observability.Metrics
}

// Server is the Bookstand HTTP API server
type Server struct {
	books   *catalog.Store
	users   *identity.Registry
	reviews *reviews.Ledger
	issuer  *identity.Issuer
	logger  *observability.Logger
	metrics *observability.Metrics

	handler http.Handler
}

// NewServer creates the API server and wires up all routes
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Books == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg.Users == nil {
		return nil, fmt.Errorf("user registry is required")
	}
	if cfg.Reviews == nil {
		return nil, fmt.Errorf("review ledger is required")
	}
	if cfg.Issuer == nil {
		return nil, fmt.Errorf("token issuer is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	s := &Server{
		books:   cfg.Books,
		users:   cfg.Users,
		reviews: cfg.Reviews,
		issuer:  cfg.Issuer,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}

	router := mux.NewRouter()
	s.registerRoutes(router)

	chain := []func(http.Handler) http.Handler{
		httputil.RecoveryMiddleware(s.logger),
		httputil.LoggingMiddleware(s.logger),
		httputil.CORSMiddleware([]string{"*"}),
		httputil.MaxBytesMiddleware(maxRequestBody),
	}
	if s.metrics != nil {
		chain = append(chain, observability.HTTPMetricsMiddleware(s.metrics))
	}
	s.handler = httputil.Chain(chain...)(router)

	return s, nil
}

func (s *Server) registerRoutes(router *mux.Router) {
	// Public catalog and identity routes
	router.HandleFunc("/books", s.listBooks).Methods(http.MethodGet)
	router.HandleFunc("/books/isbn/{isbn}", s.getBookByISBN).Methods(http.MethodGet)
	router.HandleFunc("/books/author/{author}", s.getBooksByAuthor).Methods(http.MethodGet)
	router.HandleFunc("/books/title/{title}", s.getBooksByTitle).Methods(http.MethodGet)
	router.HandleFunc("/books/isbn/{isbn}/reviews", s.listReviews).Methods(http.MethodGet)
	router.HandleFunc("/register", s.register).Methods(http.MethodPost)
	router.HandleFunc("/login", s.login).Methods(http.MethodPost)

	// Review mutations sit behind bearer token verification
	auth := middleware.NewAuthMiddleware(s.issuer)
	router.Handle("/books/isbn/{isbn}/review",
		auth.Handler(http.HandlerFunc(s.addReview))).Methods(http.MethodPost)
	router.Handle("/books/isbn/{isbn}/review/{id}",
		auth.Handler(http.HandlerFunc(s.updateReview))).Methods(http.MethodPut)
	router.Handle("/books/isbn/{isbn}/review/{id}",
		auth.Handler(http.HandlerFunc(s.deleteReview))).Methods(http.MethodDelete)
	router.Handle("/books/isbn/{isbn}/review",
		auth.Handler(http.HandlerFunc(s.deleteUserReviews))).Methods(http.MethodDelete)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) countLookup(kind, outcome string) {
	if s.metrics != nil {
		s.metrics.CatalogLookupsTotal.WithLabelValues(kind, outcome).Inc()
	}
}

func (s *Server) countReviewWrite(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.ReviewWritesTotal.WithLabelValues(operation, outcome).Inc()
		s.metrics.ReviewsTotal.Set(float64(s.reviews.Count()))
	}
}

func (s *Server) countAuthFailure(reason string) {
	if s.metrics != nil {
		s.metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	}
}
