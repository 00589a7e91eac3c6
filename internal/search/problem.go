package search

import "fmt"

// Problem describes one bounded minimization: a box defined by equal
// length lower/upper vectors, an evaluation budget and the optimizer
// population settings.
type Problem struct {
	Lower    []float64
	Upper    []float64
	MaxCalls int
	PopSize  int
	Seed     int64
}

// Dim returns the search dimensionality.
func (p *Problem) Dim() int {
	return len(p.Lower)
}

// Validate rejects malformed problems before any evaluation happens.
func (p *Problem) Validate() error {
	if len(p.Lower) == 0 {
		return fmt.Errorf("search: empty bounds")
	}
	if len(p.Lower) != len(p.Upper) {
		return fmt.Errorf("search: bound length mismatch: lower has %d, upper has %d",
			len(p.Lower), len(p.Upper))
	}
	for i := range p.Lower {
		if p.Lower[i] > p.Upper[i] {
			return fmt.Errorf("search: lower bound %g above upper bound %g at dimension %d",
				p.Lower[i], p.Upper[i], i)
		}
	}
	if p.MaxCalls <= 0 {
		return fmt.Errorf("search: evaluation budget must be positive, got %d", p.MaxCalls)
	}
	if p.PopSize <= 0 {
		return fmt.Errorf("search: population size must be positive, got %d", p.PopSize)
	}
	return nil
}

// Result holds the best point found, its objective value, and the
// number of objective evaluations spent.
type Result struct {
	Point []float64
	Value float64
	Calls int
}
