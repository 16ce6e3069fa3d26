// Package server implements the HTTP decode service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gometar/gometar"
	"github.com/gometar/gometar/internal/archive"
	"github.com/gometar/gometar/internal/observability"
	"github.com/gometar/gometar/internal/view"
)

const (
	defaultLatestLimit = 10
	maxLatestLimit     = 100
)

// Archive stores decoded reports. *archive.DB implements it.
type Archive interface {
	Save(ctx context.Context, recs ...*archive.Record) error
	Latest(ctx context.Context, location string, limit int) ([]archive.Record, error)
	PingContext(ctx context.Context) error
}

// Options configures a Server. Zero values select defaults.
type Options struct {
	Addr         string
	GroupLimit   int
	MaxBodyBytes int64
	Clock        clockwork.Clock
	Metrics      *observability.Metrics
	// Archive is optional; without it decoded reports are not stored and
	// /reports is not served.
	Archive Archive
	Logger  *slog.Logger
}

// Server exposes the decode, health, readiness and metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	clock      clockwork.Clock
	metrics    *observability.Metrics
	archive    Archive
	maxBody    int64
	parseOpts  []gometar.ParseOption
}

// NewServer creates an HTTP server with /decode, /healthz, /readyz and
// /metrics routes, plus /reports/{location} when an archive is configured.
func NewServer(opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsForTesting()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 * 1024
	}

	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:  opts.Logger,
		clock:   opts.Clock,
		metrics: opts.Metrics,
		archive: opts.Archive,
		maxBody: opts.MaxBodyBytes,
		parseOpts: []gometar.ParseOption{
			gometar.WithGroupLimit(opts.GroupLimit),
			gometar.WithLogger(opts.Logger.With("component", "decoder")),
		},
	}

	mux.HandleFunc("POST /decode", s.handleDecode)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	if s.archive != nil {
		mux.HandleFunc("GET /reports/{location}", s.handleLatest)
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// DecodeResponse is the body of a successful POST /decode.
type DecodeResponse struct {
	ReceivedAt time.Time     `json:"receivedAt"`
	Reports    []view.Report `json:"reports"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	receivedAt := s.clock.Now().UTC()
	texts, err := gometar.ReadReports(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, gometar.ErrEmptyInput):
			writeError(w, http.StatusBadRequest, "no reports in request body")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	resp := DecodeResponse{ReceivedAt: receivedAt, Reports: make([]view.Report, len(texts))}
	recs := make([]*archive.Record, len(texts))
	for i, text := range texts {
		start := s.clock.Now()
		result := gometar.Parse(text, s.parseOpts...)
		s.metrics.ObserveResult(result, s.clock.Since(start))

		resp.Reports[i] = view.FromResult(text, result, receivedAt)
		rec := archive.NewRecord(text, result, receivedAt)
		recs[i] = &rec
	}
	s.store(r.Context(), recs)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) store(ctx context.Context, recs []*archive.Record) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Save(ctx, recs...); err != nil {
		s.metrics.ArchiveWrites.WithLabelValues("error").Add(float64(len(recs)))
		s.logger.Error("archive write failed", "reports", len(recs), "error", err)
		return
	}
	s.metrics.ArchiveWrites.WithLabelValues("success").Add(float64(len(recs)))
}

// ArchivedReport is one entry of a GET /reports/{location} response.
type ArchivedReport struct {
	ID         int64      `json:"id"`
	Location   string     `json:"location"`
	Type       string     `json:"type"`
	Error      string     `json:"error,omitempty"`
	Raw        string     `json:"raw"`
	Groups     int        `json:"groups"`
	ReportTime *time.Time `json:"reportTime,omitempty"`
	ReceivedAt time.Time  `json:"receivedAt"`
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	limit := defaultLatestLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxLatestLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxLatestLimit))
			return
		}
		limit = n
	}

	recs, err := s.archive.Latest(r.Context(), r.PathValue("location"), limit)
	if err != nil {
		s.logger.Error("archive query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "archive unavailable")
		return
	}
	out := make([]ArchivedReport, len(recs))
	for i, rec := range recs {
		out[i] = ArchivedReport(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.archive != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.archive.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
