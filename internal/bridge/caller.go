// Package bridge marshals numeric arguments across a call boundary one
// at a time. A Caller holds a fixed-arity argument buffer that is
// allocated once and reused for every invocation, so an objective
// function evaluated hundreds of times during a search never allocates
// per call.
package bridge

import "fmt"

// Func is a numeric callback taking positional arguments.
type Func func(args ...float64) float64

// Caller invokes a Func through a pre-allocated argument buffer.
// Usage is strictly sequential: set every argument, then invoke,
// then repeat. The buffer is shared across invocations and is not
// protected by any lock; a Caller must not be used concurrently.
type Caller struct {
	fn   Func
	args []float64
}

// NewCaller creates a Caller for fn with the given argument arity.
func NewCaller(fn Func, arity int) (*Caller, error) {
	if fn == nil {
		return nil, fmt.Errorf("bridge: nil callback")
	}
	if arity < 0 {
		return nil, fmt.Errorf("bridge: negative arity %d", arity)
	}
	return &Caller{
		fn:   fn,
		args: make([]float64, arity),
	}, nil
}

// Arity returns the fixed number of arguments.
func (c *Caller) Arity() int {
	return len(c.args)
}

// SetArg stores v at argument position i. Positions outside
// [0, arity) are rejected.
func (c *Caller) SetArg(i int, v float64) error {
	if i < 0 || i >= len(c.args) {
		return fmt.Errorf("bridge: argument index %d out of range [0,%d)", i, len(c.args))
	}
	c.args[i] = v
	return nil
}

// SetArgs stores a full argument vector, which must match the arity.
func (c *Caller) SetArgs(vs []float64) error {
	if len(vs) != len(c.args) {
		return fmt.Errorf("bridge: got %d arguments, arity is %d", len(vs), len(c.args))
	}
	copy(c.args, vs)
	return nil
}

// Invoke calls the callback with the current buffer contents unpacked
// as positional arguments and returns its result.
func (c *Caller) Invoke() float64 {
	return c.fn(c.args...)
}
