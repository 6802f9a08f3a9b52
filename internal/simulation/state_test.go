package simulation

import (
	"errors"
	"sync"
	"testing"
)

func TestStateStore_SeedsUniverse(t *testing.T) {
	store := NewStateStore([]string{"jpm", "GS"}, false)

	universe := store.Universe()
	if len(universe) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(universe))
	}
	if universe[0] != "JPM" || universe[1] != "GS" {
		t.Errorf("expected normalized [JPM GS], got %v", universe)
	}

	for _, sym := range universe {
		price, err := store.Peek(sym)
		if err != nil {
			t.Fatalf("Peek(%s) failed: %v", sym, err)
		}
		if price < baseMin || price >= baseMax {
			t.Errorf("base price for %s out of range: %f", sym, price)
		}
	}
}

func TestStateStore_LazyRegistration(t *testing.T) {
	store := NewStateStore([]string{"JPM"}, false)

	first, err := store.Peek("ZZZT")
	if err != nil {
		t.Fatalf("Peek for unknown symbol failed: %v", err)
	}
	if first < baseMin || first >= baseMax {
		t.Errorf("lazy base price out of range: %f", first)
	}

	// The assigned base price is retained across calls.
	second, err := store.Peek("ZZZT")
	if err != nil {
		t.Fatalf("second Peek failed: %v", err)
	}
	if first != second {
		t.Errorf("base price not retained: %f != %f", first, second)
	}

	// Lazily registered symbols do not join the universe.
	if len(store.Universe()) != 1 {
		t.Errorf("universe grew on lazy registration: %v", store.Universe())
	}
}

func TestStateStore_StrictMode(t *testing.T) {
	store := NewStateStore([]string{"JPM"}, true)

	if _, err := store.Peek("JPM"); err != nil {
		t.Fatalf("Peek for registered symbol failed: %v", err)
	}

	_, err := store.Peek("ZZZT")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	_, err = store.Advance("ZZZT", func(ref float64) float64 { return ref })
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol from Advance, got %v", err)
	}
}

func TestStateStore_AdvanceMutatesAndClamps(t *testing.T) {
	store := NewStateStore([]string{"JPM"}, false)

	got, err := store.Advance("JPM", func(ref float64) float64 { return 123.45 })
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if got != 123.45 {
		t.Errorf("expected 123.45, got %f", got)
	}
	if price, _ := store.Peek("JPM"); price != 123.45 {
		t.Errorf("mutation not stored: %f", price)
	}

	// A step below the floor clamps instead of going to zero or negative.
	got, err = store.Advance("JPM", func(ref float64) float64 { return -5 })
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if got != priceFloor {
		t.Errorf("expected floor %f, got %f", priceFloor, got)
	}
}

func TestStateStore_ConcurrentAdvance(t *testing.T) {
	store := NewStateStore([]string{"JPM", "GS", "AAPL"}, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, sym := range store.Universe() {
			wg.Add(1)
			go func(sym string) {
				defer wg.Done()
				_, err := store.Advance(sym, func(ref float64) float64 {
					return ref * 1.001
				})
				if err != nil {
					t.Errorf("Advance(%s) failed: %v", sym, err)
				}
			}(sym)
		}
	}
	wg.Wait()

	for _, sym := range store.Universe() {
		if price, _ := store.Peek(sym); price <= 0 {
			t.Errorf("price for %s not positive after concurrent advances: %f", sym, price)
		}
	}
}
