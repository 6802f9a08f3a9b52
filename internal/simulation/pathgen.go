package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"market-data-lab/internal/domain"
)

// Day count bounds for generated price histories.
const (
	MinDays = 1
	MaxDays = 365
)

// Geometric Brownian motion parameters, per trading day.
const (
	dailyDrift      = 0.0002
	dailyVolatility = 0.02
)

// PathGenerator produces OHLCV price paths using geometric Brownian motion.
// It reads the symbol's reference price as the path's starting point but
// never writes it back; state mutation belongs to SnapshotGenerator.
type PathGenerator struct {
	state *StateStore

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPathGenerator creates a path generator backed by the given state store.
func NewPathGenerator(state *StateStore) *PathGenerator {
	return &PathGenerator{
		state: state,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// History generates days consecutive daily PricePoints for a symbol,
// oldest first, spaced one day apart with the last point at the current
// time. The symbol is normalized to upper case; unknown symbols are
// registered lazily by the state store unless it is strict. A day count
// outside [MinDays, MaxDays] fails with ErrInvalidDayCount.
func (g *PathGenerator) History(symbol string, days int) ([]domain.PricePoint, error) {
	if days < MinDays || days > MaxDays {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidDayCount, days, MinDays, MaxDays)
	}

	symbol = strings.ToUpper(symbol)
	price, err := g.state.Peek(symbol)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UTC()
	points := make([]domain.PricePoint, 0, days)

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))

		// GBM step: proportional change drawn from a normal shock.
		shock := g.rng.NormFloat64()
		price += price * (dailyDrift + dailyVolatility*shock)
		if price < priceFloor {
			price = priceFloor
		}

		// Per-day volatility scales the base volatility by U[0.5, 2.0).
		dayVol := dailyVolatility * (0.5 + g.rng.Float64()*1.5)
		high := price * (1 + math.Abs(g.rng.NormFloat64()*dayVol))
		low := price * (1 - math.Abs(g.rng.NormFloat64()*dayVol))
		open := price * (0.98 + g.rng.Float64()*0.04)

		// Reconciliation guarantees the OHLC invariant and must run after
		// open and close are known.
		high = math.Max(high, math.Max(open, price))
		low = math.Min(low, math.Min(open, price))

		baseVolume := 1_000_000 + g.rng.Int63n(9_000_001)
		volume := int64(float64(baseVolume) * (1 + math.Abs(g.rng.NormFloat64()*0.5)))

		open = round2(open)
		high = round2(high)
		low = round2(low)
		close := round2(price)

		points = append(points, domain.PricePoint{
			Symbol:    symbol,
			Timestamp: date,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
			VWAP:      round2((high + low + close) / 3),
		})
	}

	return points, nil
}

// round2 rounds to two decimal places, the precision of all published
// price fields.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
