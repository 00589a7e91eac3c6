// Package objective provides the built-in benchmark functions a search
// can be pointed at by name. All objectives are minimized and take
// their arguments positionally, so they can sit directly behind a
// bridge.Caller.
package objective

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/optbridge/internal/bridge"
)

var registry = map[string]bridge.Func{
	"sphere":     Sphere,
	"rosenbrock": Rosenbrock,
	"rastrigin":  Rastrigin,
	"ackley":     Ackley,
}

// Lookup returns the named objective.
func Lookup(name string) (bridge.Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown objective %q (have %v)", name, Names())
	}
	return fn, nil
}

// Names lists the registered objective names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sphere is sum(x_i^2), minimum 0 at the origin.
func Sphere(x ...float64) float64 {
	return floats.Dot(x, x)
}

// Rosenbrock is the classic banana valley, minimum 0 at (1, ..., 1).
func Rosenbrock(x ...float64) float64 {
	var sum float64
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}

// Rastrigin is highly multimodal, minimum 0 at the origin.
func Rastrigin(x ...float64) float64 {
	sum := 10 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum
}

// Ackley has a nearly flat outer region and a deep hole at the origin,
// minimum 0.
func Ackley(x ...float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sumSq := floats.Dot(x, x)
	var sumCos float64
	for _, v := range x {
		sumCos += math.Cos(2 * math.Pi * v)
	}
	return -20*math.Exp(-0.2*math.Sqrt(sumSq/n)) - math.Exp(sumCos/n) + 20 + math.E
}
