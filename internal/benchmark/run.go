package benchmark

import (
	"time"

	"github.com/google/uuid"
)

// NewRun wraps a report into a Run ready to be stored.
func NewRun(r *Report, commit string) Run {
	results := make([]Result, len(r.Results))
	copy(results, r.Results)
	return Run{
		ID:        uuid.NewString(),
		Suite:     r.Suite,
		Timestamp: time.Now().UTC(),
		Commit:    commit,
		Results:   results,
	}
}
