// Package server exposes the difficulty estimators over HTTP: GET /score
// for scoring, /healthz for liveness, and Prometheus metrics on /metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pencalc/pencalc/internal/difficulty"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/logging"
	"github.com/pencalc/pencalc/internal/orchestration"
)

// shutdownGrace is how long in-flight requests get to finish after the
// context is canceled.
const shutdownGrace = 5 * time.Second

// Server serves scoring requests.
type Server struct {
	addr     string
	opts     difficulty.Options
	security SecurityConfig
	metrics  *Metrics
	log      logging.Logger
}

// New creates a Server with the default security configuration.
func New(addr string, opts difficulty.Options, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Server{
		addr:     addr,
		opts:     opts,
		security: DefaultSecurityConfig(),
		metrics:  NewMetrics(),
		log:      log,
	}
}

// Handler builds the HTTP routing table with security and metrics
// middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/score", s.wrap(s.handleScore))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealthz))
	mux.HandleFunc("/metrics", s.wrap(s.metrics.WritePrometheus))
	return mux
}

// wrap applies the middleware chain to one handler.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(next))
}

// metricsMiddleware tracks request counts and the in-flight gauge.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logging.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "http server shutdown")
		}
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return apperrors.WrapError(err, "http server")
	}
}

// scoreResponse is the JSON shape of one scored operation.
type scoreResponse struct {
	Operation string  `json:"operation"`
	Statement string  `json:"statement"`
	Score     float64 `json:"score,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// handleScore scores one operation, or every applicable one when op=all.
// Query parameters: a, b (operands), op (sum|difference|product|division|
// all), and optional radix and cache overrides.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	query := r.URL.Query()
	a, err := parseOperand(query.Get("a"), s.security.MaxOperand)
	if err != nil {
		writeError(w, http.StatusBadRequest, "a: "+err.Error())
		return
	}
	b, err := parseOperand(query.Get("b"), s.security.MaxOperand)
	if err != nil {
		writeError(w, http.StatusBadRequest, "b: "+err.Error())
		return
	}

	opts, err := s.requestOptions(query.Get("radix"), query.Get("cache"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opName := query.Get("op")
	if opName == "" || opName == "all" {
		results := orchestration.ExecuteScoring(r.Context(), a, b, opts)
		for _, res := range results {
			s.metrics.ObserveScore(string(res.Operation), res.Duration, res.Err)
		}
		writeJSON(w, http.StatusOK, toResponses(results))
		return
	}

	op := orchestration.Operation(opName)
	result := orchestration.ScoreOperation(op, a, b, opts)
	s.metrics.ObserveScore(opName, result.Duration, result.Err)
	if result.Err != nil {
		writeError(w, statusFor(result.Err), result.Err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResponses([]orchestration.ScoreResult{result})[0])
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestOptions layers per-request radix and cache overrides onto the
// server defaults.
func (s *Server) requestOptions(radix, cache string) (difficulty.Options, error) {
	opts := s.opts
	if radix != "" {
		parsed, err := strconv.Atoi(radix)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("radix", "not an integer: %q", radix)
		}
		opts.Radix = parsed
	}
	if cache != "" {
		parsed, err := strconv.Atoi(cache)
		if err != nil {
			return opts, apperrors.NewInvalidInputError("cache", "not an integer: %q", cache)
		}
		opts.CacheSize = parsed
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseOperand(raw string, max uint64) (uint64, error) {
	if raw == "" {
		return 0, errors.New("missing operand")
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New("not a non-negative integer")
	}
	if value > max {
		return 0, errors.New("operand exceeds the allowed maximum")
	}
	return value, nil
}

// statusFor maps scoring errors to HTTP statuses: bad input is the
// client's fault, unsupported or invalid operations are unprocessable.
func statusFor(err error) int {
	switch {
	case errors.As(err, new(apperrors.InvalidInputError)):
		return http.StatusBadRequest
	case errors.As(err, new(apperrors.InvalidOperationError)),
		errors.As(err, new(apperrors.UnsupportedOperationError)):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func toResponses(results []orchestration.ScoreResult) []scoreResponse {
	out := make([]scoreResponse, len(results))
	for i, res := range results {
		out[i] = scoreResponse{
			Operation: string(res.Operation),
			Statement: res.Statement,
			Score:     res.Score,
		}
		if res.Err != nil {
			out[i].Score = 0
			out[i].Error = res.Err.Error()
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
