// Package server exposes an anagram solver over HTTP.
//
// Routes:
//
//	GET /solve?letters=C?T   JSON result with the words grouped by length
//	GET /healthz             liveness probe
//
// Every response carries an X-Request-ID header. A request id sent by the
// client is echoed back, otherwise a new one is generated.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/errors"
	"github.com/milden6/dawg-anagram/internal/config"
)

// RequestIDHeader names the header that carries the request id.
const RequestIDHeader = "X-Request-ID"

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Response is the body of a successful /solve request.
type Response struct {
	*anagram.Result
	Groups []anagram.Group `json:"groups"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// Server serves queries against one solver.
type Server struct {
	solver *anagram.Solver
	cfg    config.Server
	logger *log.Logger
	router chi.Router
}

// New creates a server for solver.
func New(solver *anagram.Solver, cfg config.Server, logger *log.Logger) *Server {
	s := &Server{
		solver: solver,
		cfg:    cfg,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/solve", s.handleSolve)

	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is done, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Debug("Server shut down gracefully")
	return ctx.Err()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK\n"))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("letters") {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing letters parameter"))
		return
	}

	result, err := s.solver.Solve(r.Context(), r.URL.Query().Get("letters"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Result: result,
		Groups: anagram.GroupByLength(result.All()),
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	logger := s.logger.With("request_id", w.Header().Get(RequestIDHeader))
	if status >= http.StatusInternalServerError {
		logger.Error("Query failed", "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("Query rejected", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps an error to the HTTP status reported for it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInputTooLong), errors.Is(err, errors.ErrCodeInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeAllocation):
		return http.StatusInsufficientStorage
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requestID tags the request and the response with a request id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("Request",
			"request_id", w.Header().Get(RequestIDHeader),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}
