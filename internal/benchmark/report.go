package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBaseline is returned when the baseline names no result.
	ErrUnknownBaseline = errors.New("baseline trial not found")
	// ErrZeroBaseline is returned when the baseline took no measurable time.
	ErrZeroBaseline = errors.New("baseline duration must be greater than zero")
)

// Report holds the results of one harness run in trial order.
type Report struct {
	Suite     string   `json:"suite" yaml:"suite"`
	BuildInfo string   `json:"build_info" yaml:"build_info"`
	Baseline  string   `json:"baseline" yaml:"baseline"`
	Results   []Result `json:"results" yaml:"results"`
}

// Normalized is a trial's duration relative to the baseline.
type Normalized struct {
	Name  string  `json:"name" yaml:"name"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// Result returns the result recorded under name.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Normalize divides each duration by the baseline duration. The baseline
// itself is always exactly 1.
func (r *Report) Normalize() ([]Normalized, error) {
	base, ok := r.Result(r.Baseline)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBaseline, r.Baseline)
	}
	if base.Elapsed <= 0 {
		return nil, fmt.Errorf("%w: %q recorded %v", ErrZeroBaseline, base.Name, base.Elapsed)
	}

	out := make([]Normalized, len(r.Results))
	for i, res := range r.Results {
		out[i].Name = res.Name
		if res.Name == base.Name {
			out[i].Ratio = 1.0
			continue
		}
		out[i].Ratio = float64(res.Elapsed) / float64(base.Elapsed)
	}
	return out, nil
}

// CheckBaseline reports ErrUnknownBaseline when no trial is named baseline.
// Callers use it to reject a bad baseline before any trial runs.
func CheckBaseline(trials []Trial, baseline string) error {
	for _, t := range trials {
		if t.Name == baseline {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBaseline, baseline)
}
