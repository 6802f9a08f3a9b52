package domain

import "time"

// Quote is the current market state of a single symbol at snapshot time.
// MarketCap and PERatio are absent (nil) for the broad-market index symbol;
// absent is not the same as zero and consumers must treat it that way.
type Quote struct {
	Symbol        string    `json:"symbol"`
	CurrentPrice  float64   `json:"current_price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
	MarketCap     *float64  `json:"market_cap,omitempty"`
	PERatio       *float64  `json:"pe_ratio,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
