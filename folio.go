// Package folio renders structured reports to paginated PDF documents.
//
// Basic usage:
//
//	path, res, err := folio.New("분석 리포트").
//	    Blocks(blocks...).
//	    Save(ctx, "out")
//	if err != nil {
//	    // handle error
//	}
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(res.Warnings))
//	}
//
// From a backend response:
//
//	data, _ := os.ReadFile("eligibility.json")
//	pdf, _, err := folio.FromJSON(report.Unknown, data).
//	    ThemeFile("theme.yaml").
//	    PDF()
//
// For lower-level control, the render and canvas packages are also
// available.
package folio

import (
	"errors"

	"github.com/tsawler/folio/render"
	"github.com/tsawler/folio/report"
)

// ErrNoBlocks is returned when a document has nothing to lay out.
var ErrNoBlocks = errors.New("folio: document has no blocks")

// New starts a document with the given banner title.
//
// Example:
//
//	pdf, _, err := folio.New("리포트").Blocks(block.Paragraph{Text: "본문"}).PDF()
func New(title string) *Document {
	return &Document{
		title:   title,
		options: defaultOptions(),
	}
}

// FromReport starts a document from an adapter's output.
//
// Example:
//
//	rep := resp.Report()
//	path, _, err := folio.FromReport(rep).Save(ctx, dir)
func FromReport(rep report.Report) *Document {
	d := New(rep.Title).Blocks(rep.Blocks...)
	if rep.Subtitle != "" {
		d = d.Subtitle(rep.Subtitle)
	}
	return d
}

// FromJSON decodes a backend response and starts a document from it. A
// decoding failure is carried to the terminal operation. report.Unknown
// detects the report kind from the JSON keys.
func FromJSON(kind report.Kind, data []byte) *Document {
	src, err := report.Decode(kind, data)
	if err != nil {
		d := New("")
		d.err = err
		return d
	}
	return FromReport(src.Report())
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := folio.Must(folio.New("t").Blocks(b).Layout())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender is a helper that wraps a call to PDF() or Save() and panics
// if the error is non-nil. It discards the result and returns just the
// value.
//
// Example:
//
//	pdf := folio.MustRender(folio.New("t").Blocks(b).PDF())
func MustRender[T any](val T, _ Result, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings joins render warnings into a single line.
func FormatWarnings(warnings []render.Warning) string {
	return render.FormatWarnings(warnings)
}
