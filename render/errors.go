package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/folio/block"
)

var (
	// ErrUnknownBlock is returned for a block type the engine has no
	// renderer for.
	ErrUnknownBlock = errors.New("render: unknown block kind")

	// ErrNilBlock is returned for a nil entry in the block list.
	ErrNilBlock = errors.New("render: nil block")

	// ErrNilCanvas is returned when Render is called without a canvas.
	ErrNilCanvas = errors.New("render: nil canvas")
)

// Error is a fatal render failure. It records which block was being
// processed when the render aborted. Index is -1 for failures outside the
// block list, such as the banner or the footers.
type Error struct {
	Index int
	Kind  block.Kind
	Err   error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("render failed: %v", e.Err)
	}
	return fmt.Sprintf("render failed at block %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WarningKind classifies a non-fatal layout event.
type WarningKind int

const (
	// WideToken means a single word is wider than its line and was drawn
	// past the right edge.
	WideToken WarningKind = iota
	// TallBlock means a block segment is taller than a whole page and was
	// drawn past the bottom margin.
	TallBlock
	// WideLine means an unwrapped line, such as a requirement's primary
	// text, is wider than its space.
	WideLine
	// MissingGlyph means text contains characters the font cannot draw.
	MissingGlyph
)

// String returns a string representation of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WideToken:
		return "wide_token"
	case TallBlock:
		return "tall_block"
	case WideLine:
		return "wide_line"
	case MissingGlyph:
		return "missing_glyph"
	default:
		return "unknown"
	}
}

// Warning reports content drawn as-is although it overflows its container.
// Overflow never fails a render.
type Warning struct {
	Index   int // block index, -1 for the banner
	Kind    WarningKind
	Page    int // 0-based page the content landed on, -1 if unknown
	Message string
}

func (w Warning) String() string {
	if w.Index < 0 {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("block %d: %s: %s", w.Index, w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
