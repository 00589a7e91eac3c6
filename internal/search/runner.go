package search

import (
	"log/slog"
	"math"

	"github.com/cwbudde/optbridge/internal/bridge"
	"github.com/cwbudde/optbridge/internal/opt"
)

// Progress reports a new best value to an observer. Called from the
// evaluation path, so implementations should be cheap.
type Progress func(calls int, value float64, point []float64)

// Run minimizes fn over the problem's box using the given optimizer.
// Each candidate is marshalled through a bridge.Caller (set every
// argument, then invoke), and a counting wrapper tracks the best
// (point, value) pair seen so the result can never be worse than any
// evaluated candidate. onImprove may be nil.
func Run(p Problem, optimizer opt.Optimizer, fn bridge.Func, onImprove Progress) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	caller, err := bridge.NewCaller(fn, p.Dim())
	if err != nil {
		return nil, err
	}

	slog.Info("Starting search", "dim", p.Dim(), "max_calls", p.MaxCalls, "pop", p.PopSize)

	calls := 0
	bestValue := math.Inf(1)
	bestPoint := make([]float64, p.Dim())

	eval := func(x []float64) float64 {
		for i, v := range x {
			if err := caller.SetArg(i, v); err != nil {
				// Candidate of wrong dimension; bounds were validated,
				// so this indicates an optimizer bug
				panic(err)
			}
		}
		value := caller.Invoke()
		calls++

		if value < bestValue {
			bestValue = value
			copy(bestPoint, x)
			if onImprove != nil {
				onImprove(calls, value, bestPoint)
			}
		}
		return value
	}

	point, value := optimizer.Run(eval, p.Lower, p.Upper, p.Dim())

	// Prefer the wrapper's record if the optimizer reports worse
	if bestValue < value {
		point, value = bestPoint, bestValue
	}

	slog.Info("Search complete", "best_value", value, "calls", calls)

	return &Result{
		Point: point,
		Value: value,
		Calls: calls,
	}, nil
}
