// Package report turns backend analysis responses into block lists.
//
// Each response type decodes the JSON the analysis service returns and
// implements [Source]:
//
//	src, err := report.Decode(report.Unknown, data) // kind detected from keys
//	if err != nil {
//		return err
//	}
//	rep := src.Report()
//	// rep.Title, rep.Subtitle and rep.Blocks feed render.Engine
//
// Adapters are null-safe. Missing arrays are treated as empty, missing
// strings become "-", HTML fragments in model output are reduced to plain
// text, and every section keeps at least one block: a section with no data
// gets a block.Placeholder instead of being dropped.
package report
