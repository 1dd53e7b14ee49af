package benchmark

import "time"

// Trial is one named strategy under test.
//
// Op is called Iterations times between two clock reads. Use Iterations 1
// when Op carries its own loop. Setup and Teardown are optional and never
// timed.
type Trial struct {
	Name       string
	Iterations int
	Op         func() error
	Setup      func() error
	Teardown   func() error
}

// Result is the measured outcome of a single trial.
type Result struct {
	Name       string        `json:"name" yaml:"name"`
	Iterations int64         `json:"iterations" yaml:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Millis returns the elapsed time truncated to whole milliseconds.
func (r Result) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// NsPerOp returns the mean cost of one call of the trial operation.
func (r Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// Run represents a collection of benchmark results from a single execution.
type Run struct {
	ID        string    `json:"id"`
	Suite     string    `json:"suite"`
	Timestamp time.Time `json:"timestamp"`
	Commit    string    `json:"commit,omitempty"` // Git commit hash
	Results   []Result  `json:"results"`
}
