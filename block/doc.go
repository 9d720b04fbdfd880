// Package block defines the content blocks a document is assembled from.
//
// A document is a flat, ordered []Block. Blocks are plain values: they
// never reference each other and renderers never modify them. The set of
// kinds is closed; see [Kind] for the full list.
//
// Colors are never stored on blocks directly. Blocks carry a theme.Tone,
// or a [Judgment] / [Similarity] that resolves to one through a lookup
// table with a gray fallback:
//
//	row := block.RequirementRow{
//		Judgment:    block.ParseJudgment("불가"),
//		PrimaryText: "중소기업 기본법상 중소기업일 것",
//	}
//	row.Judgment.Tone() // theme.Danger
package block
