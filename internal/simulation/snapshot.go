package simulation

import (
	"math/rand"
	"sync"
	"time"

	"market-data-lab/internal/domain"
)

// SnapshotGenerator produces one current Quote per tracked symbol and is
// the only component that advances reference prices. Each call jitters
// every symbol's stored price and writes the new value back, so repeated
// calls drift like a random walk over the life of the process. Calls are
// therefore not idempotent; the result cache in front of this generator
// deliberately suppresses that drift on cache hits.
type SnapshotGenerator struct {
	state       *StateStore
	indexSymbol string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSnapshotGenerator creates a snapshot generator over the given state.
// indexSymbol identifies the broad-market index whose quotes carry no
// market cap or P/E ratio.
func NewSnapshotGenerator(state *StateStore, indexSymbol string) *SnapshotGenerator {
	return &SnapshotGenerator{
		state:       state,
		indexSymbol: indexSymbol,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Snapshot generates a quote for every symbol in the universe, in universe
// order, advancing each symbol's reference price to the quoted value.
func (g *SnapshotGenerator) Snapshot() ([]domain.Quote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UTC()
	symbols := g.state.Universe()
	quotes := make([]domain.Quote, 0, len(symbols))

	for _, symbol := range symbols {
		current, err := g.state.Advance(symbol, func(ref float64) float64 {
			return ref * (0.95 + g.rng.Float64()*0.10)
		})
		if err != nil {
			return nil, err
		}

		// Synthetic previous close, jittered off the new current price.
		prevClose := current * (0.98 + g.rng.Float64()*0.04)
		change := current - prevClose
		changePercent := change / prevClose * 100

		q := domain.Quote{
			Symbol:        symbol,
			CurrentPrice:  round2(current),
			Change:        round2(change),
			ChangePercent: round2(changePercent),
			Volume:        500_000 + g.rng.Int63n(4_500_001),
			Timestamp:     now,
		}

		// The index never carries a market cap or P/E; absent, not zero.
		if symbol != g.indexSymbol {
			cap := current * float64(1_000_000+g.rng.Int63n(9_000_001))
			pe := 10 + g.rng.Float64()*25
			q.MarketCap = &cap
			q.PERatio = &pe
		}

		quotes = append(quotes, q)
	}

	return quotes, nil
}
