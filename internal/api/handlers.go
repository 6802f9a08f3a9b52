package api

import (
	"errors"
	"net/http"
	"strconv"

	"market-data-lab/internal/aggregation"
	"market-data-lab/internal/simulation"
)

// defaultDays is the history window used when the days query parameter is
// absent.
const defaultDays = 30

// daysParam parses the optional days query parameter. Range validation is
// the engine's job; only syntax is checked here.
func daysParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultDays, nil
	}
	return strconv.Atoi(raw)
}

// writeEngineError maps engine error kinds to HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, simulation.ErrInvalidDayCount),
		errors.Is(err, aggregation.ErrEmptyBasket):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, simulation.ErrUnknownSymbol):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, aggregation.ErrDegenerateSeries):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleMarketSummary serves the cached market summary with top movers.
func (s *Server) handleMarketSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.MarketSummary()
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handlePriceHistory serves raw OHLCV records for one symbol.
func (s *Server) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	days, err := daysParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "days must be an integer")
		return
	}

	points, err := s.engine.PriceHistory(r.PathValue("symbol"), days)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// handleCorrelation serves the correlation matrix for the default basket.
func (s *Server) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	days, err := daysParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "days must be an integer")
		return
	}

	matrix, err := s.engine.Correlation(s.engine.Basket(), days)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

// handleSymbols lists the tracked symbol universe.
func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	symbols := s.engine.Symbols()
	writeJSON(w, http.StatusOK, map[string]any{
		"symbols": symbols,
		"count":   len(symbols),
	})
}

// handlePerformanceMetrics reports cache stats and universe size.
func (s *Server) handlePerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.CacheStats()
	writeJSON(w, http.StatusOK, map[string]any{
		"cache_size":     stats.Size,
		"cache_maxsize":  stats.Capacity,
		"cache_ttl":      stats.TTL.Seconds(),
		"active_symbols": len(s.engine.Symbols()),
	})
}
