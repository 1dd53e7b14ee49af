package pdftext

import (
	"fmt"
	"os"

	rscpdf "rsc.io/pdf"
)

// RSCExtractor uses rsc.io/pdf.
type RSCExtractor struct{}

type rscDocument struct {
	f *os.File
	r *rscpdf.Reader
}

func (d *rscDocument) NumPages() int { return d.r.NumPage() }

func (d *rscDocument) Close() error { return d.f.Close() }

func (RSCExtractor) Name() string { return "rsc_pdf" }

func (RSCExtractor) Load(path string) (doc Document, err error) {
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

	r, err := rscpdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &rscDocument{f: f, r: r}, nil
}

func (RSCExtractor) ExtractText(doc Document, pageIndex int) (entries []TextEntry, err error) {
	d, ok := doc.(*rscDocument)
	if !ok {
		return nil, fmt.Errorf("document %T was not loaded by rsc_pdf", doc)
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
