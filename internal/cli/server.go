package cli

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okranz/ratchet/pkg/graph"
)

// Server exposes the observability surface of a live drive session:
// Prometheus metrics, the diagram with a progress overlay, and a JSON state
// snapshot.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

type stateResponse struct {
	Machine string   `json:"machine"`
	State   string   `json:"state"`
	Visited []string `json:"visited"`
	Steps   int      `json:"steps"`
}

// NewServer builds the HTTP endpoints around a driver.
func NewServer(addr string, reg *prometheus.Registry, d *Driver, logger *slog.Logger) *Server {
	r := chi.NewRouter()

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/graph", func(w http.ResponseWriter, req *http.Request) {
		g := graph.FromDef(d.Def)
		overlay := d.Snapshot()
		if req.URL.Query().Get("format") == "dot" {
			w.Header().Set("Content-Type", "text/vnd.graphviz")
			_, _ = w.Write([]byte(g.DOT(&overlay)))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(g.Mermaid(&overlay)))
	})

	r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
		overlay := d.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stateResponse{
			Machine: d.name(),
			State:   overlay.Current,
			Visited: overlay.Visited,
			Steps:   d.Steps(),
		}); err != nil {
			logger.Warn("state encode failed", "err", err)
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		srv:    &http.Server{Addr: addr, Handler: r},
		logger: logger,
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", "err", err)
		}
	}()
}

// Shutdown drains outstanding requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
