package simulation

import "errors"

// Simulation errors. All are input errors and propagate to the caller
// unretried; nothing here is transient.
var (
	// ErrInvalidDayCount is returned when a requested day count falls
	// outside [MinDays, MaxDays]. Out-of-range requests fail, they are
	// never silently clamped.
	ErrInvalidDayCount = errors.New("day count out of range")

	// ErrUnknownSymbol is returned by a strict-mode state store for symbols
	// outside its registered set. The default policy registers unknown
	// symbols lazily instead.
	ErrUnknownSymbol = errors.New("unknown symbol")
)
