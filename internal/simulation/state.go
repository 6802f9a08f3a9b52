// Package simulation implements the stochastic market data generators:
// the per-symbol reference price state, the geometric-Brownian-motion
// price path generator, and the market snapshot generator.
package simulation

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	// priceFloor is the smallest reference price a symbol can hold.
	// Prices never reach zero or go negative.
	priceFloor = 0.01

	// Lazily registered symbols start at a uniform random price in
	// [baseMin, baseMax), same as the seeded universe.
	baseMin = 50.0
	baseMax = 500.0
)

// slot holds one symbol's reference price behind its own lock, so
// concurrent snapshot calls only serialize per symbol, not globally.
type slot struct {
	mu    sync.Mutex
	price float64
}

// StateStore owns the current reference price of every known symbol.
// It is the only component that mutates persistent state; the path
// generator reads it read-only. Reference prices are never reset for the
// life of the process.
type StateStore struct {
	mu       sync.RWMutex
	slots    map[string]*slot
	universe []string
	strict   bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewStateStore seeds a store with the given symbol universe, assigning
// each symbol a random base price. Symbols are normalized to upper case.
// With strict set, lookups of unregistered symbols fail with
// ErrUnknownSymbol instead of registering them.
func NewStateStore(symbols []string, strict bool) *StateStore {
	s := &StateStore{
		slots:  make(map[string]*slot, len(symbols)),
		strict: strict,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, sym := range symbols {
		sym = strings.ToUpper(sym)
		s.slots[sym] = &slot{price: s.randomBasePrice()}
		s.universe = append(s.universe, sym)
	}
	return s
}

func (s *StateStore) randomBasePrice() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return baseMin + s.rng.Float64()*(baseMax-baseMin)
}

// lookup returns the slot for a symbol, registering it lazily unless the
// store is strict. Registered-on-demand symbols keep their slot for the
// process lifetime but do not join the universe.
func (s *StateStore) lookup(symbol string) (*slot, error) {
	s.mu.RLock()
	sl, ok := s.slots[symbol]
	s.mu.RUnlock()
	if ok {
		return sl, nil
	}
	if s.strict {
		return nil, ErrUnknownSymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.slots[symbol]; ok {
		return sl, nil
	}
	sl = &slot{price: s.randomBasePrice()}
	s.slots[symbol] = sl
	return sl, nil
}

// Peek returns the current reference price of a symbol without mutating it.
func (s *StateStore) Peek(symbol string) (float64, error) {
	sl, err := s.lookup(symbol)
	if err != nil {
		return 0, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.price, nil
}

// Advance applies fn to the symbol's reference price under the symbol's
// lock, stores the result clamped to the price floor, and returns it.
// This is the single mutation point for reference prices.
func (s *StateStore) Advance(symbol string, fn func(ref float64) float64) (float64, error) {
	sl, err := s.lookup(symbol)
	if err != nil {
		return 0, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	next := fn(sl.price)
	if next < priceFloor {
		next = priceFloor
	}
	sl.price = next
	return next, nil
}

// Universe returns the seeded symbol set in registration order. Symbols
// registered lazily after start are not included.
func (s *StateStore) Universe() []string {
	out := make([]string, len(s.universe))
	copy(out, s.universe)
	return out
}
