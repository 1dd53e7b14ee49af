package benchmark

import "fmt"

// Comparison is the change of one trial between two runs.
type Comparison struct {
	Name        string
	ElapsedDiff float64 // Percentage change
	NsPerOpDiff float64 // Percentage change
	Prev        Result
	Curr        Result
}

// Compare runs comparison between two results.
// It returns a list of comparisons for trials present in both runs, in the
// order of the current run.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[string]Result)
	for _, r := range prev.Results {
		prevMap[r.Name] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		if p, ok := prevMap[c.Name]; ok {
			comp := Comparison{
				Name: c.Name,
				Prev: p,
				Curr: c,
			}

			if p.Elapsed > 0 {
				comp.ElapsedDiff = float64(c.Elapsed-p.Elapsed) / float64(p.Elapsed) * 100
			}
			if pn := p.NsPerOp(); pn > 0 {
				comp.NsPerOpDiff = (c.NsPerOp() - pn) / pn * 100
			}

			comparisons = append(comparisons, comp)
		}
	}
	return comparisons
}

// Regressions returns the comparisons that slowed down by more than
// threshold percent.
func Regressions(comps []Comparison, threshold float64) []Comparison {
	var out []Comparison
	for _, c := range comps {
		if c.ElapsedDiff > threshold {
			out = append(out, c)
		}
	}
	return out
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% elapsed", c.Name, c.ElapsedDiff)
}
