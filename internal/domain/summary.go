package domain

import "time"

// MarketSummary is the ranked reduction of one quote batch.
// Each top list holds at most five entries; smaller batches yield shorter
// lists. TotalMarketCap sums only quotes that carry a market cap.
type MarketSummary struct {
	TotalSymbols   int       `json:"total_symbols"`
	TotalVolume    int64     `json:"total_volume"`
	TotalMarketCap float64   `json:"total_market_cap"`
	TopGainers     []Quote   `json:"top_gainers"`
	TopLosers      []Quote   `json:"top_losers"`
	MostActive     []Quote   `json:"most_active"`
	Timestamp      time.Time `json:"timestamp"`
}
