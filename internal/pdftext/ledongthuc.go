package pdftext

import (
	"fmt"
	"os"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucExtractor uses github.com/ledongthuc/pdf.
type LedongthucExtractor struct{}

type ledongthucDocument struct {
	f *os.File
	r *lpdf.Reader
}

func (d *ledongthucDocument) NumPages() int { return d.r.NumPage() }

func (d *ledongthucDocument) Close() error { return d.f.Close() }

func (LedongthucExtractor) Name() string { return "ledongthuc_pdf" }

func (LedongthucExtractor) Load(path string) (doc Document, err error) {
	f, size, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			f.Close()
		}
	}()
	defer recoverMalformed(path, &err)

	r, err := lpdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &ledongthucDocument{f: f, r: r}, nil
}

func (LedongthucExtractor) ExtractText(doc Document, pageIndex int) (entries []TextEntry, err error) {
	d, ok := doc.(*ledongthucDocument)
	if !ok {
		return nil, fmt.Errorf("document %T was not loaded by ledongthuc_pdf", doc)
	}
	if err := checkPage(d, pageIndex); err != nil {
		return nil, err
	}
	defer recoverMalformed(fmt.Sprintf("page %d", pageIndex), &err)

	page := d.r.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, pageIndex)
	}
	for _, t := range page.Content().Text {
		entries = append(entries, TextEntry{Text: t.S, Font: t.Font, FontSize: t.FontSize, X: t.X, Y: t.Y})
	}
	return entries, nil
}
