// Package dispatch compares the cost of calling the same method through
// static dispatch, an interface, and function values.
package dispatch

import "microbench/internal/benchmark"

// DefaultLoops is the number of calls each trial makes.
const DefaultLoops = 100_000_000

// Trial names, in the order they are run.
const (
	DirectCall           = "direct_call"
	MethodOnConcrete     = "method_on_concrete"
	InterfaceCall        = "interface_call"
	FuncValueOutsideLoop = "func_value_outside_loop"
	FuncValueInsideLoop  = "func_value_inside_loop"
)

// Stepper is satisfied by anything that can advance an accumulator.
type Stepper interface {
	Step()
}

// Accumulator is shared by every trial so the timed work has an
// observable effect.
type Accumulator struct {
	v int64
}

// NewAccumulator returns an accumulator starting at v.
func NewAccumulator(v int64) *Accumulator {
	return &Accumulator{v: v}
}

// Advance is the non-interface entry point.
func (a *Accumulator) Advance() {
	a.v *= 2
	a.v /= 2
	a.v += 2
}

// Step implements Stepper with the same arithmetic as Advance.
func (a *Accumulator) Step() {
	a.v *= 2
	a.v /= 2
	a.v += 2
}

// Value returns the accumulated value.
func (a *Accumulator) Value() int64 {
	return a.v
}

// stepper hides the concrete type behind Stepper. Kept out of line so the
// compiler cannot devirtualize calls through the result.
//
//go:noinline
func stepper(a *Accumulator) Stepper {
	return a
}

// Suite builds the dispatch trials over acc. Every trial loops internally
// loops times; the harness calls each one once.
func Suite(acc *Accumulator, loops int) []benchmark.Trial {
	iface := stepper(acc)

	return []benchmark.Trial{
		{Name: DirectCall, Iterations: 1, Op: func() error {
			for i := 0; i < loops; i++ {
				acc.Advance()
			}
			return nil
		}},
		{Name: MethodOnConcrete, Iterations: 1, Op: func() error {
			for i := 0; i < loops; i++ {
				acc.Step()
			}
			return nil
		}},
		{Name: InterfaceCall, Iterations: 1, Op: func() error {
			for i := 0; i < loops; i++ {
				iface.Step()
			}
			return nil
		}},
		{Name: FuncValueOutsideLoop, Iterations: 1, Op: func() error {
			f := iface.Step
			for i := 0; i < loops; i++ {
				f()
			}
			return nil
		}},
		{Name: FuncValueInsideLoop, Iterations: 1, Op: func() error {
			for i := 0; i < loops; i++ {
				f := iface.Step
				f()
			}
			return nil
		}},
	}
}
