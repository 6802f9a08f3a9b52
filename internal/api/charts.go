package api

import (
	"net/http"
	"time"
)

// Chart payloads are column-oriented plain data for the client-side chart
// layer. Reshaping records into plotting-library trees is the client's
// concern, not this service's.

// CandlestickChart is an OHLC series in column form; all columns share the
// timestamp index.
type CandlestickChart struct {
	Symbol     string      `json:"symbol"`
	Timestamps []time.Time `json:"timestamps"`
	Open       []float64   `json:"open"`
	High       []float64   `json:"high"`
	Low        []float64   `json:"low"`
	Close      []float64   `json:"close"`
}

// VolumeChart is a volume bar series; Up marks bars whose close was at or
// above the open, for client-side coloring.
type VolumeChart struct {
	Symbol     string      `json:"symbol"`
	Timestamps []time.Time `json:"timestamps"`
	Volume     []int64     `json:"volume"`
	Up         []bool      `json:"up"`
}

// Heatmap holds per-symbol change and sizing data for the market
// performance heatmap. MarketCaps entries are nil for symbols without one.
type Heatmap struct {
	Symbols       []string   `json:"symbols"`
	ChangePercent []float64  `json:"change_percent"`
	MarketCaps    []*float64 `json:"market_caps"`
}

// handleCandlestickChart serves a price history reshaped into candlestick
// columns.
func (s *Server) handleCandlestickChart(w http.ResponseWriter, r *http.Request) {
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

	chart := CandlestickChart{
		Timestamps: make([]time.Time, len(points)),
		Open:       make([]float64, len(points)),
		High:       make([]float64, len(points)),
		Low:        make([]float64, len(points)),
		Close:      make([]float64, len(points)),
	}
	for i, p := range points {
		chart.Symbol = p.Symbol
		chart.Timestamps[i] = p.Timestamp
		chart.Open[i] = p.Open
		chart.High[i] = p.High
		chart.Low[i] = p.Low
		chart.Close[i] = p.Close
	}
	writeJSON(w, http.StatusOK, chart)
}

// handleVolumeChart serves a price history reshaped into volume bars.
func (s *Server) handleVolumeChart(w http.ResponseWriter, r *http.Request) {
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

	chart := VolumeChart{
		Timestamps: make([]time.Time, len(points)),
		Volume:     make([]int64, len(points)),
		Up:         make([]bool, len(points)),
	}
	for i, p := range points {
		chart.Symbol = p.Symbol
		chart.Timestamps[i] = p.Timestamp
		chart.Volume[i] = p.Volume
		chart.Up[i] = p.Close >= p.Open
	}
	writeJSON(w, http.StatusOK, chart)
}

// handleHeatmap serves per-symbol performance data for the whole universe.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.engine.MarketSnapshot()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	hm := Heatmap{
		Symbols:       make([]string, len(quotes)),
		ChangePercent: make([]float64, len(quotes)),
		MarketCaps:    make([]*float64, len(quotes)),
	}
	for i, q := range quotes {
		hm.Symbols[i] = q.Symbol
		hm.ChangePercent[i] = q.ChangePercent
		hm.MarketCaps[i] = q.MarketCap
	}
	writeJSON(w, http.StatusOK, hm)
}
