// Package canvas provides the drawing primitives the block renderers use.
//
// All coordinates are absolute page coordinates in millimetres with the
// origin at the top-left corner. Primitives are stateless with respect to
// layout: a canvas never tracks a write position, it only draws where it
// is told.
//
// # Implementations
//
//   - [PDF] writes a PDF document through github.com/go-pdf/fpdf.
//   - [Raster] paints RGBA page images through github.com/fogleman/gg for
//     PNG previews.
//   - [Recorder] keeps an in-memory log of every primitive; tests and
//     layout inspection use it.
//   - [Multi] forwards every call to several canvases so one layout pass
//     feeds all of them.
//
// # Example
//
//	pdf, err := canvas.NewPDF(canvas.DefaultPDFConfig())
//	if err != nil {
//		return err
//	}
//	pdf.RoundedRect(canvas.R(15, 60, 180, 10), 2, canvas.Filled(lightGray))
//	pdf.Text([]string{"Title"}, 19, 67, canvas.TextStyle{Size: 12, Weight: font.Bold})
//	_, err = pdf.WriteTo(w)
package canvas
