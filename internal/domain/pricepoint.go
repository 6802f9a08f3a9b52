// Package domain defines the plain data records produced by the market data
// engine. Everything crossing the engine boundary is one of these types;
// no generator internals leak out.
package domain

import "time"

// PricePoint is one simulated day of OHLCV data for a symbol.
// Invariants: Low <= Open <= High, Low <= Close <= High, Volume >= 0.
type PricePoint struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
	// VWAP is (High+Low+Close)/3, a simplified approximation rather than a
	// true volume-weighted average. The field name is kept for wire
	// compatibility with the consumers of the original API.
	VWAP float64 `json:"vwap"`
}
