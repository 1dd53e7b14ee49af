package pdftext

import (
	"fmt"
	"io"
	"os"

	"microbench/internal/benchmark"
)

// Baseline is the extractor the others are normalized against.
const Baseline = "ledongthuc_pdf"

// Config selects the document and page to extract.
type Config struct {
	File string
	Page int
	// Out receives one line per text entry. Nil discards the text.
	Out io.Writer
}

// Extractors returns every available extractor in run order.
func Extractors() []Extractor {
	return []Extractor{RSCExtractor{}, LedongthucExtractor{}}
}

// Suite builds one trial per extractor. Each trial loads the document,
// extracts the page, writes the text and closes the document.
func Suite(cfg Config, extractors ...Extractor) []benchmark.Trial {
	if len(extractors) == 0 {
		extractors = Extractors()
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	trials := make([]benchmark.Trial, 0, len(extractors))
	for _, ex := range extractors {
		trials = append(trials, benchmark.Trial{
			Name:       ex.Name(),
			Iterations: 1,
			Setup: func() error {
				if _, err := os.Stat(cfg.File); err != nil {
					return fmt.Errorf("pdf file: %w", err)
				}
				return nil
			},
			Op: func() error {
				_, err := Extract(ex, cfg.File, cfg.Page, out)
				return err
			},
		})
	}
	return trials
}

// Extract loads path with ex, writes the text of page to out and returns
// the number of entries written.
func Extract(ex Extractor, path string, page int, out io.Writer) (int, error) {
	doc, err := ex.Load(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	entries, err := ex.ExtractText(doc, page)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, e.Text); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}
