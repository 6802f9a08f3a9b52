package domain

// CorrelationMatrix holds pairwise Pearson correlation coefficients for a
// basket of symbols. Values is square with len(Symbols) rows, symmetric,
// with a unit diagonal; every entry lies in [-1, 1].
type CorrelationMatrix struct {
	Symbols []string    `json:"symbols"`
	Values  [][]float64 `json:"values"`
}
