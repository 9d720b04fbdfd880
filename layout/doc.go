// Package layout tracks the write position of a paginated document.
//
// A [Cursor] owns the vertical position and page index of a single render
// pass. Block renderers ask it for space before drawing and advance it
// afterwards:
//
//	cursor := layout.NewCursor(layout.A4(), pdf)
//	cursor.EnsureSpace(h) // breaks the page if h does not fit
//	draw(cursor.Y())
//	cursor.Advance(h + gap)
//
// # Page Metrics
//
// [PageMetrics] describes the fixed page geometry. [A4] returns the default
// portrait page with a 15mm margin; continuation pages start at a 20mm top
// margin.
//
// # Invariants
//
// The page index never decreases. Within a page y never decreases, and a
// page break resets it to the top margin. Immediately after
// [Cursor.EnsureSpace] y lies between the margin and the bottom margin.
//
// A block taller than a whole page is not split. When the cursor is on a
// page with nothing on it, EnsureSpace does not break again and the block
// overflows the bottom margin instead.
package layout
