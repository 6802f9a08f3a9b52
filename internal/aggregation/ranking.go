// Package aggregation reduces quote batches and generated price series into
// cross-symbol views: market summaries and correlation matrices. Everything
// here is a pure function of its input; no state is read or mutated.
package aggregation

import (
	"sort"
	"time"

	"market-data-lab/internal/domain"
)

// topN is the length cap of each ranked list in a market summary.
const topN = 5

// Summarize ranks a quote batch into top gainers, top losers and most
// active, and computes batch totals. Gainers are ordered by change percent
// descending, losers ascending, most active by volume descending; each list
// holds min(topN, len(quotes)) entries. The total market cap sums only
// quotes that carry one.
func Summarize(quotes []domain.Quote) domain.MarketSummary {
	byChangeDesc := sortedCopy(quotes, func(a, b domain.Quote) bool {
		return a.ChangePercent > b.ChangePercent
	})
	byChangeAsc := sortedCopy(quotes, func(a, b domain.Quote) bool {
		return a.ChangePercent < b.ChangePercent
	})
	byVolumeDesc := sortedCopy(quotes, func(a, b domain.Quote) bool {
		return a.Volume > b.Volume
	})

	var totalVolume int64
	var totalMarketCap float64
	for _, q := range quotes {
		totalVolume += q.Volume
		if q.MarketCap != nil {
			totalMarketCap += *q.MarketCap
		}
	}

	return domain.MarketSummary{
		TotalSymbols:   len(quotes),
		TotalVolume:    totalVolume,
		TotalMarketCap: totalMarketCap,
		TopGainers:     head(byChangeDesc, topN),
		TopLosers:      head(byChangeAsc, topN),
		MostActive:     head(byVolumeDesc, topN),
		Timestamp:      time.Now().UTC(),
	}
}

// sortedCopy sorts a copy of the batch, leaving the input untouched.
func sortedCopy(quotes []domain.Quote, less func(a, b domain.Quote) bool) []domain.Quote {
	out := make([]domain.Quote, len(quotes))
	copy(out, quotes)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func head(quotes []domain.Quote, n int) []domain.Quote {
	if len(quotes) < n {
		n = len(quotes)
	}
	return quotes[:n]
}
