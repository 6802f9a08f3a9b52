package domain

// IndexSymbol is the broad-market index in the universe. Its quotes never
// carry a market cap or P/E ratio.
const IndexSymbol = "SPY"

// DefaultUniverse is the fixed set of tracked tickers loaded at engine
// start. Symbols requested outside this set are registered lazily with a
// random base price but never join the published universe.
var DefaultUniverse = []string{
	"JPM", "GS", "MS", "BAC", "C", "WFC", "AAPL", "MSFT", "GOOGL", "AMZN",
	"TSLA", "META", "NVDA", "SPY", "QQQ", "DIA", "IWM", "VTI", "XLF", "XLK",
}

// DefaultBasket is the basket used for correlation analysis when the caller
// does not supply one.
var DefaultBasket = []string{"JPM", "GS", "AAPL", "MSFT", "SPY"}
