// Package render lays out a flat list of blocks onto pages.
//
// An [Engine] turns []block.Block into drawing calls on a canvas.Canvas:
//
//	engine, err := render.New(render.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	pdf, _ := canvas.NewPDF(canvas.DefaultPDFConfig())
//	res, err := engine.Render(pdf, render.Header{Title: "분석 리포트"}, blocks)
//
// # Pass Structure
//
// A render is one synchronous pass through the states NotStarted,
// DrawingHeader, DrawingSections and Finalizing to Done. The banner is
// drawn once on page 1. Blocks are then drawn in order, and once the page
// count is known every page gets a "{page} / {total}" footer.
//
// # Measurement
//
// Every block is measured once into one or more segments. A segment's
// height drives both the page-break check and the cursor advance, so the
// cursor always moves by exactly [Engine.Measure]'s Height + Gap for a
// block that is not split. Lists (numbered, bulleted, key/value grids)
// have one segment per item and may break between items; every other
// block is a single segment and is never split. A segment taller than a
// page is drawn past the bottom margin and reported as a TallBlock
// warning.
//
// # Errors
//
// Overflow is never an error; it is reported through Result.Warnings. A
// nil block, a block type without a renderer, or a panic while planning
// or drawing aborts the render and is returned as *Error. The canvas must
// then be discarded.
package render
