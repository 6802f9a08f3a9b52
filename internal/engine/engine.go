// Package engine exposes the market data producers behind the result
// cache. It is the boundary the service layer talks to: plain parameters
// in, plain domain records out.
package engine

import (
	"fmt"
	"log"
	"strings"
	"time"

	"market-data-lab/internal/aggregation"
	"market-data-lab/internal/cache"
	"market-data-lab/internal/domain"
	"market-data-lab/internal/observability"
	"market-data-lab/internal/simulation"
)

// Cache key operation prefixes. Keys are deterministic strings built from
// the operation name and every parameter that affects the result.
const (
	opPriceHistory   = "price_history"
	opMarketSnapshot = "market_snapshot"
	opMarketSummary  = "market_summary"
	opCorrelation    = "correlation"
)

// Options configures a new Engine. Zero fields fall back to defaults.
type Options struct {
	// Symbols is the tracked universe; defaults to domain.DefaultUniverse.
	Symbols []string
	// Basket is the default correlation basket; defaults to
	// domain.DefaultBasket.
	Basket []string
	// CacheCapacity bounds the result cache entry count; defaults to 1000.
	CacheCapacity int
	// CacheTTL is the freshness window of every cached result; defaults
	// to 5 minutes.
	CacheTTL time.Duration
	// StrictSymbols rejects unknown symbols instead of registering them
	// lazily with a random base price.
	StrictSymbols bool
	Logger        *log.Logger
}

// Engine owns the simulator state and serves cached results from the
// generators and the aggregation functions.
type Engine struct {
	state     *simulation.StateStore
	paths     *simulation.PathGenerator
	snapshots *simulation.SnapshotGenerator
	cache     *cache.Cache
	basket    []string
	logger    *log.Logger
}

// New builds an engine, seeding the state store with the symbol universe.
func New(opts Options) *Engine {
	if len(opts.Symbols) == 0 {
		opts.Symbols = domain.DefaultUniverse
	}
	if len(opts.Basket) == 0 {
		opts.Basket = domain.DefaultBasket
	}
	if opts.CacheCapacity == 0 {
		opts.CacheCapacity = 1000
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	state := simulation.NewStateStore(opts.Symbols, opts.StrictSymbols)
	return &Engine{
		state:     state,
		paths:     simulation.NewPathGenerator(state),
		snapshots: simulation.NewSnapshotGenerator(state, domain.IndexSymbol),
		cache:     cache.New(opts.CacheCapacity, opts.CacheTTL),
		basket:    opts.Basket,
		logger:    opts.Logger,
	}
}

// PriceHistory returns days of simulated OHLCV data for a symbol, cached
// per (symbol, days). Day counts outside [1, 365] fail with
// simulation.ErrInvalidDayCount before the cache is consulted.
func (e *Engine) PriceHistory(symbol string, days int) ([]domain.PricePoint, error) {
	if days < simulation.MinDays || days > simulation.MaxDays {
		return nil, fmt.Errorf("%w: %d", simulation.ErrInvalidDayCount, days)
	}
	symbol = strings.ToUpper(symbol)

	key := fmt.Sprintf("%s_%s_%d", opPriceHistory, symbol, days)
	v, err := e.cache.GetOrCompute(opPriceHistory, key, func() (any, error) {
		start := time.Now()
		points, err := e.paths.History(symbol, days)
		observability.RecordProducer(opPriceHistory, time.Since(start).Seconds(), err)
		if err != nil {
			return nil, err
		}
		e.logger.Printf("generated %d days of price history for %s", days, symbol)
		return points, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PricePoint), nil
}

// MarketSnapshot returns a quote per universe symbol. A cache hit skips the
// snapshot generator entirely, so reference prices do not drift for that
// request; state only advances when the TTL forces a recompute. This
// behavioral coupling is deliberate.
func (e *Engine) MarketSnapshot() ([]domain.Quote, error) {
	v, err := e.cache.GetOrCompute(opMarketSnapshot, opMarketSnapshot, func() (any, error) {
		start := time.Now()
		quotes, err := e.snapshots.Snapshot()
		observability.RecordProducer(opMarketSnapshot, time.Since(start).Seconds(), err)
		return quotes, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Quote), nil
}

// SummarizeMarket ranks an arbitrary quote batch. Pure and uncached; use
// MarketSummary for the cached summary of the current universe.
func (e *Engine) SummarizeMarket(quotes []domain.Quote) domain.MarketSummary {
	return aggregation.Summarize(quotes)
}

// MarketSummary generates a fresh snapshot and ranks it, cached as one
// unit under its own key.
func (e *Engine) MarketSummary() (domain.MarketSummary, error) {
	v, err := e.cache.GetOrCompute(opMarketSummary, opMarketSummary, func() (any, error) {
		start := time.Now()
		quotes, err := e.snapshots.Snapshot()
		if err != nil {
			observability.RecordProducer(opMarketSummary, time.Since(start).Seconds(), err)
			return nil, err
		}
		summary := aggregation.Summarize(quotes)
		observability.RecordProducer(opMarketSummary, time.Since(start).Seconds(), nil)
		e.logger.Printf("generated market summary for %d symbols", summary.TotalSymbols)
		return summary, nil
	})
	if err != nil {
		return domain.MarketSummary{}, err
	}
	return v.(domain.MarketSummary), nil
}

// Correlation computes the pairwise Pearson correlation matrix for a basket
// over a days-long closing-price window. An empty basket is an input error;
// callers wanting the default basket pass Basket().
func (e *Engine) Correlation(basket []string, days int) (domain.CorrelationMatrix, error) {
	if len(basket) == 0 {
		return domain.CorrelationMatrix{}, aggregation.ErrEmptyBasket
	}
	if days < simulation.MinDays || days > simulation.MaxDays {
		return domain.CorrelationMatrix{}, fmt.Errorf("%w: %d", simulation.ErrInvalidDayCount, days)
	}
	upper := make([]string, len(basket))
	for i, s := range basket {
		upper[i] = strings.ToUpper(s)
	}

	key := fmt.Sprintf("%s_%s_%d", opCorrelation, strings.Join(upper, ","), days)
	v, err := e.cache.GetOrCompute(opCorrelation, key, func() (any, error) {
		start := time.Now()
		matrix, err := aggregation.Correlate(e.paths, upper, days)
		observability.RecordProducer(opCorrelation, time.Since(start).Seconds(), err)
		return matrix, err
	})
	if err != nil {
		return domain.CorrelationMatrix{}, err
	}
	return v.(domain.CorrelationMatrix), nil
}

// FreshSnapshot bypasses the cache and advances state, for callers that
// need live drift (the quote stream).
func (e *Engine) FreshSnapshot() ([]domain.Quote, error) {
	return e.snapshots.Snapshot()
}

// Basket returns the default correlation basket.
func (e *Engine) Basket() []string {
	out := make([]string, len(e.basket))
	copy(out, e.basket)
	return out
}

// Symbols returns the tracked universe in order.
func (e *Engine) Symbols() []string {
	return e.state.Universe()
}

// CacheStats reports the result cache's size, capacity and TTL.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.Stats()
}
