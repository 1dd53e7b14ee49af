// Package pdftext extracts the text of a single PDF page through
// interchangeable third-party libraries.
package pdftext

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrPageOutOfRange is returned for a page index outside the document.
	ErrPageOutOfRange = errors.New("page index out of range")
	// ErrMalformed is returned when a library cannot make sense of the file.
	ErrMalformed = errors.New("malformed PDF")
)

// TextEntry is one piece of text as reported by a library.
type TextEntry struct {
	Text     string
	Font     string
	FontSize float64
	X, Y     float64
}

// Document is a loaded PDF.
type Document interface {
	NumPages() int
	Close() error
}

// Extractor loads documents and extracts page text. Page indexes are
// 0-based.
type Extractor interface {
	Name() string
	Load(path string) (Document, error)
	ExtractText(doc Document, pageIndex int) ([]TextEntry, error)
}

func openFile(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return f, fi.Size(), nil
}

func checkPage(doc Document, pageIndex int) error {
	if pageIndex < 0 || pageIndex >= doc.NumPages() {
		return fmt.Errorf("%w: %d (document has %d pages)", ErrPageOutOfRange, pageIndex, doc.NumPages())
	}
	return nil
}

// recoverMalformed turns a library panic into ErrMalformed. Both parsers
// panic on some corrupt inputs instead of returning errors.
func recoverMalformed(what string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s: %v", ErrMalformed, what, r)
	}
}
