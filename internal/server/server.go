package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/country"
	"github.com/dmitrymomot/country/pkg/health"
	"github.com/dmitrymomot/country/pkg/logger"
)

const defaultReadyTimeout = 2 * time.Second

// Server serves the country API.
type Server struct {
	repo         *country.Repository
	router       chi.Router
	logger       *slog.Logger
	readyTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for access logs, panics and failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReadyTimeout bounds the readiness probe.
func WithReadyTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readyTimeout = d
		}
	}
}

// New builds a server over repo.
func New(repo *country.Repository, opts ...Option) *Server {
	s := &Server{
		repo:         repo,
		logger:       logger.NewNope(),
		readyTimeout: defaultReadyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(RequestID, s.accessLog, s.recoverer)
	r.NotFound(s.handle(func(http.ResponseWriter, *http.Request) error {
		return errNotFound("route not found")
	}))
	r.MethodNotAllowed(s.handle(func(http.ResponseWriter, *http.Request) error {
		return newHTTPError(http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", ErrBadRequest)
	}))

	r.Route("/countries", func(r chi.Router) {
		r.Get("/", s.handle(s.listCountries))
		r.Get("/column", s.handle(s.countryColumn))
		r.Get("/{code}", s.handle(s.getCountry))
	})

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"datasets": func(ctx context.Context) error {
			return repo.Warm(ctx)
		},
	}, health.WithTimeout(s.readyTimeout), health.WithLogger(s.logger)))

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handlerFunc is an HTTP handler that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.handleError(w, r, err)
		}
	}
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = newHTTPError(http.StatusInternalServerError, "internal_error", "internal server error", err)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", httpErr.Err),
		)
	}

	writeJSON(w, httpErr.Code, errorResponse{Error: errorBody{
		Code:      httpErr.ErrorCode,
		Message:   httpErr.Message,
		RequestID: GetRequestID(r.Context()),
	}})
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
