// Package api is the thin HTTP service layer over the market data engine.
// It handles transport encoding, chart-shaped reshaping and request
// validation; all market semantics live in the engine.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"market-data-lab/internal/engine"
	"market-data-lab/internal/observability"
)

// Server serves the market data API.
type Server struct {
	engine         *engine.Engine
	logger         *log.Logger
	streamInterval time.Duration
	corsOrigins    []string
	upgrader       websocket.Upgrader
}

// Options configures a Server.
type Options struct {
	Engine *engine.Engine
	Logger *log.Logger
	// StreamInterval is the push period of the quote stream; defaults to 2s.
	StreamInterval time.Duration
	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.StreamInterval <= 0 {
		opts.StreamInterval = 2 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	allowed := originChecker(opts.CORSOrigins)
	return &Server{
		engine:         opts.Engine,
		logger:         opts.Logger,
		streamInterval: opts.StreamInterval,
		corsOrigins:    opts.CORSOrigins,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return allowed(r.Header.Get("Origin"))
			},
		},
	}
}

// Routes builds the full handler tree, middleware included.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/", s.handleRoot)
	mux.HandleFunc("GET /api/market/summary", s.handleMarketSummary)
	mux.HandleFunc("GET /api/market/heatmap", s.handleHeatmap)
	mux.HandleFunc("GET /api/stocks/{symbol}/price-history", s.handlePriceHistory)
	mux.HandleFunc("GET /api/stocks/{symbol}/chart/candlestick", s.handleCandlestickChart)
	mux.HandleFunc("GET /api/stocks/{symbol}/chart/volume", s.handleVolumeChart)
	mux.HandleFunc("GET /api/analytics/correlation", s.handleCorrelation)
	mux.HandleFunc("GET /api/symbols", s.handleSymbols)
	mux.HandleFunc("GET /api/performance/metrics", s.handlePerformanceMetrics)
	mux.HandleFunc("GET /api/ws/quotes", s.handleQuoteStream)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", observability.Handler())

	return chain(mux,
		recoveryMiddleware(s.logger),
		loggingMiddleware(s.logger),
		corsMiddleware(s.corsOrigins),
	)
}

// handleRoot returns the service banner.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Financial Data Visualization API",
		"status":  "active",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
