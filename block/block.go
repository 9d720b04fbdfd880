package block

import (
	"fmt"

	"github.com/tsawler/folio/theme"
)

// Kind identifies the type of a block.
type Kind int

const (
	KindUnknown Kind = iota
	KindSectionHeader
	KindSummaryCard
	KindStatRow
	KindRequirementRow
	KindCalloutBox
	KindKeyValueGrid
	KindNumberedList
	KindParagraph
	KindBulletList
	KindScoredItem
	KindCard
	KindQnaItem
	KindPlaceholder
)

var kindNames = [...]string{
	KindUnknown:        "unknown",
	KindSectionHeader:  "section_header",
	KindSummaryCard:    "summary_card",
	KindStatRow:        "stat_row",
	KindRequirementRow: "requirement_row",
	KindCalloutBox:     "callout_box",
	KindKeyValueGrid:   "key_value_grid",
	KindNumberedList:   "numbered_list",
	KindParagraph:      "paragraph",
	KindBulletList:     "bullet_list",
	KindScoredItem:     "scored_item",
	KindCard:           "card",
	KindQnaItem:        "qna_item",
	KindPlaceholder:    "placeholder",
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Block is one self-contained unit of a document. The set of blocks is
// closed: only the types in this package implement it.
type Block interface {
	Kind() Kind
	sealed()
}

// SectionHeader is a full-width rounded bar introducing a section.
type SectionHeader struct {
	Title string
	Icon  string // defaults to ■
}

// SummaryCard is the dashboard card with a colored status tile on the left
// and a heading plus summary text on the right.
type SummaryCard struct {
	StatusLabel string
	StatusTone  theme.Tone
	Caption     string // small text under the status label
	Heading     string // defaults to 종합 요약
	SummaryText string
}

// Stat is one metric box of a StatRow.
type Stat struct {
	Label string
	Value string
	Tone  theme.Tone
}

// StatRow lays out equal-width metric boxes in a single row. The row is
// divided into max(Columns, len(Items)) slots.
type StatRow struct {
	Items   []Stat
	Columns int
}

// RequirementRow is a judged requirement: a colored badge, one line of
// primary text and an optional panel of detail lines.
type RequirementRow struct {
	// BadgeLabel is the badge text; empty uses the judgment's label
	BadgeLabel  string
	Judgment    Judgment
	PrimaryText string
	DetailLines []string
}

// CalloutBox is a bordered box with a colored title bar and bulleted items.
type CalloutBox struct {
	Title string
	Tone  theme.Tone
	Items []string
}

// KeyValue is one row of a KeyValueGrid.
type KeyValue struct {
	Label string
	Value string
}

// KeyValueGrid is a two-column label/value table.
type KeyValueGrid struct {
	Rows []KeyValue
}

// NumberedList is a list with numbered circles.
type NumberedList struct {
	Items []string
	Start int // first number, defaults to 1
}

// Paragraph is wrapped body text with an optional bold label line.
type Paragraph struct {
	Label string
	Text  string
}

// BulletList is a titled list of items with a per-list marker.
type BulletList struct {
	Title  string
	Marker Marker
	Items  []string
}

// ScoredItem is an evaluation item with a right-aligned score and a note.
type ScoredItem struct {
	Title string
	Score string
	Note  string
}

// Card is a bordered card with a colored header bar holding a tag, a
// title and an optional similarity badge.
type Card struct {
	Tag        string
	Title      string
	Badge      string // badge text; empty draws no badge
	Similarity Similarity
	Meta       string
	Body       string
	Tone       theme.Tone // header bar color
}

// QnaItem is an expected question with its answer and an optional tip.
type QnaItem struct {
	Index    int
	Question string
	Answer   string
	Tip      string
}

// Placeholder stands in for a section that has no data.
type Placeholder struct {
	Text string
}

func (SectionHeader) Kind() Kind  { return KindSectionHeader }
func (SummaryCard) Kind() Kind    { return KindSummaryCard }
func (StatRow) Kind() Kind        { return KindStatRow }
func (RequirementRow) Kind() Kind { return KindRequirementRow }
func (CalloutBox) Kind() Kind     { return KindCalloutBox }
func (KeyValueGrid) Kind() Kind   { return KindKeyValueGrid }
func (NumberedList) Kind() Kind   { return KindNumberedList }
func (Paragraph) Kind() Kind      { return KindParagraph }
func (BulletList) Kind() Kind     { return KindBulletList }
func (ScoredItem) Kind() Kind     { return KindScoredItem }
func (Card) Kind() Kind           { return KindCard }
func (QnaItem) Kind() Kind        { return KindQnaItem }
func (Placeholder) Kind() Kind    { return KindPlaceholder }

func (SectionHeader) sealed()  {}
func (SummaryCard) sealed()    {}
func (StatRow) sealed()        {}
func (RequirementRow) sealed() {}
func (CalloutBox) sealed()     {}
func (KeyValueGrid) sealed()   {}
func (NumberedList) sealed()   {}
func (Paragraph) sealed()      {}
func (BulletList) sealed()     {}
func (ScoredItem) sealed()     {}
func (Card) sealed()           {}
func (QnaItem) sealed()        {}
func (Placeholder) sealed()    {}

// Count returns the number of blocks of kind k.
func Count(blocks []Block, k Kind) int {
	n := 0
	for _, b := range blocks {
		if b != nil && b.Kind() == k {
			n++
		}
	}
	return n
}

// Items returns the number of list items carried by b. Blocks that are not
// lists count as one item.
func Items(b Block) int {
	switch v := b.(type) {
	case NumberedList:
		return len(v.Items)
	case BulletList:
		return len(v.Items)
	case KeyValueGrid:
		return len(v.Rows)
	case CalloutBox:
		return len(v.Items)
	case StatRow:
		return len(v.Items)
	case nil:
		return 0
	}
	return 1
}
