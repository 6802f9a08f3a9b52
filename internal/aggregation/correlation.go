package aggregation

import (
	"errors"
	"fmt"
	"math"

	"market-data-lab/internal/domain"
)

// Correlation errors.
var (
	// ErrEmptyBasket is returned when correlation is requested over zero
	// symbols.
	ErrEmptyBasket = errors.New("correlation basket is empty")

	// ErrDegenerateSeries is returned when a generated closing-price series
	// has zero variance. The stochastic generator should never produce one;
	// this is asserted rather than surfaced as a silent NaN.
	ErrDegenerateSeries = errors.New("series has zero variance")
)

// SeriesSource produces a closing-price series for one symbol.
// simulation.PathGenerator satisfies it.
type SeriesSource interface {
	History(symbol string, days int) ([]domain.PricePoint, error)
}

// Correlate generates a closing-price series per basket symbol and computes
// the pairwise Pearson correlation matrix over a days-long window. The
// result is symmetric with a unit diagonal and every entry in [-1, 1].
func Correlate(src SeriesSource, basket []string, days int) (domain.CorrelationMatrix, error) {
	if len(basket) == 0 {
		return domain.CorrelationMatrix{}, ErrEmptyBasket
	}

	series := make([][]float64, len(basket))
	for i, symbol := range basket {
		points, err := src.History(symbol, days)
		if err != nil {
			return domain.CorrelationMatrix{}, err
		}
		closes := make([]float64, len(points))
		for j, p := range points {
			closes[j] = p.Close
		}
		series[i] = closes
	}

	n := len(basket)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, err := pearson(series[i], series[j])
			if err != nil {
				return domain.CorrelationMatrix{}, fmt.Errorf("%s/%s: %w", basket[i], basket[j], err)
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	symbols := make([]string, n)
	copy(symbols, basket)
	return domain.CorrelationMatrix{Symbols: symbols, Values: values}, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series using the covariance over the product of standard deviations,
// clamped to [-1, 1] against floating point drift.
func pearson(a, b []float64) (float64, error) {
	n := len(a)
	meanA := mean(a)
	meanB := mean(b)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0, ErrDegenerateSeries
	}

	r := cov / math.Sqrt(varA*varB)
	return math.Max(-1, math.Min(1, r)), nil
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
