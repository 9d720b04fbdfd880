package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/canvas"
	"github.com/tsawler/folio/font"
)

func (p *planner) sectionHeader(b block.SectionHeader) *plan {
	icon := b.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	label := icon + "  " + b.Title
	p.line(label, p.cw()-8, 12, font.Bold)

	out := &plan{}
	out.add(SectionPad+SectionBar, SectionGap, func(c canvas.Canvas, y float64) {
		bar := y + SectionPad
		c.RoundedRect(canvas.R(p.left(), bar, p.cw(), SectionBar), 2, canvas.Filled(p.pal.LightGray))
		c.Text([]string{label}, p.left()+4, bar+7, p.style(12, font.Bold, p.pal.Dark))
	})
	return out
}

// summaryCard grows to fit its summary instead of truncating it.
func (p *planner) summaryCard(b block.SummaryCard) *plan {
	heading := b.Heading
	if heading == "" {
		heading = DefaultSumHdr
	}
	textW := p.cw() - 40
	lines := p.wrap(b.SummaryText, textW, BodySize, font.Regular)
	h := math.Max(SummaryMinH, 18+p.m.Height(len(lines), BodySize))

	// The status label shrinks until it fits its 25mm tile.
	statusSize := 14.0
	for _, s := range []float64{14, 12, 10} {
		statusSize = s
		if p.m.Fits(b.StatusLabel, 23, s, font.Bold) {
			break
		}
	}

	out := &plan{}
	out.add(h, SummaryGap, func(c canvas.Canvas, y float64) {
		x := p.left()
		c.RoundedRect(canvas.R(x, y, p.cw(), h), 3, canvas.Paint{
			Style:  canvas.FillStroke,
			Fill:   p.pal.White,
			Stroke: p.pal.Border,
		})
		c.RoundedRect(canvas.R(x+5, y+5, 25, 25), 2, canvas.Filled(p.pal.Tone(b.StatusTone)))

		status := p.style(statusSize, font.Bold, p.pal.White)
		status.Align = canvas.AlignCenter
		status.VAlign = canvas.Middle
		statusY := y + 17.5
		if b.Caption != "" {
			statusY = y + 16
			caption := p.style(8, font.Bold, p.pal.White)
			caption.Align = canvas.AlignCenter
			caption.VAlign = canvas.Middle
			c.Text([]string{b.Caption}, x+17.5, y+23, caption)
		}
		c.Text([]string{b.StatusLabel}, x+17.5, statusY, status)

		c.Text([]string{heading}, x+35, y+10, p.style(12, font.Bold, p.pal.Dark))
		c.Text(lines, x+35, y+18, p.style(BodySize, font.Regular, p.pal.Gray))
	})
	return out
}

// statRow divides the row into max(Columns, len(Items)) equal slots.
func (p *planner) statRow(b block.StatRow) *plan {
	out := &plan{}
	if len(b.Items) == 0 {
		return out
	}

	n := b.Columns
	if len(b.Items) > n {
		n = len(b.Items)
	}
	boxW := (p.cw() - StatGap*float64(n-1)) / float64(n)
	for _, it := range b.Items {
		p.line(it.Value, boxW-10, 14, font.Bold)
	}

	out.add(StatHeight, StatRowGap, func(c canvas.Canvas, y float64) {
		for i, it := range b.Items {
			x := p.left() + float64(i)*(boxW+StatGap)
			c.FillRect(canvas.R(x, y, 2, StatHeight), p.pal.Tone(it.Tone))
			c.FillRect(canvas.R(x+2, y, boxW-2, StatHeight), p.pal.StatBg)
			c.Text([]string{it.Label}, x+8, y+8, p.style(9, font.Regular, p.pal.Gray))
			c.Text([]string{it.Value}, x+8, y+16, p.style(14, font.Bold, p.pal.Dark))
		}
	})
	return out
}

// requirementRow measures the detail panel once; the same height drives
// the page-break check and the panel drawn.
func (p *planner) requirementRow(b block.RequirementRow) *plan {
	label := b.BadgeLabel
	if label == "" {
		label = b.Judgment.Label()
	}
	p.line(b.PrimaryText, p.cw()-20, BodySize, font.Regular)

	var details []string
	for _, d := range b.DetailLines {
		if strings.TrimSpace(d) == "" {
			continue
		}
		if !strings.HasPrefix(d, "•") {
			d = "• " + d
		}
		details = append(details, p.wrap(d, p.cw()-10, 8, font.Regular)...)
	}

	h := float64(RowHeight)
	var detailH float64
	if len(details) > 0 {
		detailH = p.m.Height(len(details), 8) + 8
		h += detailH + 2
	}

	out := &plan{}
	out.add(h, RowGap, func(c canvas.Canvas, y float64) {
		x := p.left()
		c.RoundedRect(canvas.R(x, y, BadgeWidth, BadgeHeight), 2, canvas.Filled(p.pal.Tone(b.Judgment.Tone())))

		badge := p.style(8, font.Bold, p.pal.White)
		badge.Align = canvas.AlignCenter
		badge.VAlign = canvas.Middle
		c.Text([]string{label}, x+BadgeWidth/2, y+BadgeHeight/2, badge)

		c.Text([]string{b.PrimaryText}, x+18, y+4.5, p.style(BodySize, font.Regular, p.pal.Dark))

		if detailH > 0 {
			c.RoundedRect(canvas.R(x+5, y+RowHeight, p.cw()-5, detailH), 2, canvas.Filled(p.pal.LightGray))
			c.Text(details, x+8, y+RowHeight+6, p.style(8, font.Regular, p.pal.Gray))
		}

		sep := y + h + RowGap - 3
		c.Line(canvas.Pt(x, sep), canvas.Pt(p.right(), sep), p.pal.Divider, 0.5)
	})
	return out
}

func (p *planner) calloutBox(b block.CalloutBox) *plan {
	items := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, "• "+it)
	}
	lines := p.wrap(strings.Join(items, "\n\n"), p.cw()-10, BodySize, font.Regular)
	h := p.m.Height(len(lines), BodySize) + CalloutBar + CalloutPad
	tone := p.pal.Tone(b.Tone)

	out := &plan{}
	out.add(h, CalloutGap, func(c canvas.Canvas, y float64) {
		x := p.left()
		c.RoundedRect(canvas.R(x, y, p.cw(), h), 2, canvas.Stroked(tone, 0.5))
		c.FillRect(canvas.R(x, y, p.cw(), CalloutBar), tone)
		c.Text([]string{b.Title}, x+4, y+5.5, p.style(BodySize, font.Bold, p.pal.White))
		c.Text(lines, x+5, y+14, p.style(BodySize, font.Regular, p.pal.Dark))
	})
	return out
}

// keyValueGrid plans one segment per row so long grids break between rows.
func (p *planner) keyValueGrid(b block.KeyValueGrid) *plan {
	out := &plan{}
	for i, row := range b.Rows {
		labels := p.wrap(row.Label, LabelColumn-2, BodySize, font.Bold)
		values := p.wrap(row.Value, p.cw()-LabelColumn, BodySize, font.Regular)
		n := len(values)
		if len(labels) > n {
			n = len(labels)
		}
		if n == 0 {
			n = 1
		}
		h := p.m.Height(n, BodySize) + 4

		gap := 0.0
		if i == len(b.Rows)-1 {
			gap = ListGap
		}
		out.add(h, gap, func(c canvas.Canvas, y float64) {
			base := y + 2 + ascent(BodySize)
			c.Text(labels, p.left(), base, p.style(BodySize, font.Bold, p.pal.Gray))
			c.Text(values, p.left()+LabelColumn, base, p.style(BodySize, font.Regular, p.pal.Dark))
			c.Line(canvas.Pt(p.left(), y+h), canvas.Pt(p.right(), y+h), p.pal.Divider, 0.2)
		})
	}
	return out
}

// numberedList plans one segment per item.
func (p *planner) numberedList(b block.NumberedList) *plan {
	start := b.Start
	if start == 0 {
		start = 1
	}

	out := &plan{}
	for i, item := range b.Items {
		lines := p.wrap(item, p.cw()-8, BodySize, font.Regular)
		if len(lines) == 0 {
			lines = []string{""}
		}
		num := strconv.Itoa(start + i)
		gap := float64(ItemGap)
		if i == len(b.Items)-1 {
			gap = ListGap
		}

		out.add(p.m.Height(len(lines), BodySize), gap, func(c canvas.Canvas, y float64) {
			base := y + ascent(BodySize)
			dot := canvas.Pt(p.left()+3, base-1.2)
			c.Circle(dot, 2.4, canvas.Filled(p.pal.Secondary))

			numStyle := p.style(8, font.Bold, p.pal.White)
			numStyle.Align = canvas.AlignCenter
			numStyle.VAlign = canvas.Middle
			c.Text([]string{num}, dot.X, dot.Y, numStyle)

			c.Text(lines, p.left()+8, base, p.style(BodySize, font.Regular, p.pal.Dark))
		})
	}
	return out
}

func (p *planner) paragraph(b block.Paragraph) *plan {
	lines := p.wrap(b.Text, p.cw(), BodySize, font.Regular)
	out := &plan{}
	if b.Label == "" && len(lines) == 0 {
		return out
	}

	var labelH float64
	if b.Label != "" {
		labelH = LabelLine
	}
	h := labelH + p.m.Height(len(lines), BodySize)

	out.add(h, ParagraphGap, func(c canvas.Canvas, y float64) {
		if b.Label != "" {
			c.Text([]string{b.Label}, p.left(), y+ascent(BodySize), p.style(BodySize, font.Bold, p.pal.Dark))
		}
		c.Text(lines, p.left(), y+labelH+ascent(BodySize), p.style(BodySize, font.Regular, p.pal.Dark))
	})
	return out
}

// bulletList plans one segment per item. The title travels with the first
// item so it never ends a page on its own.
func (p *planner) bulletList(b block.BulletList) *plan {
	out := &plan{}

	var titleH float64
	titleColor := p.pal.Dark
	if b.Marker == block.Alert {
		titleColor = p.pal.Danger
	}
	drawTitle := func(c canvas.Canvas, y float64) {
		c.Text([]string{b.Title}, p.left(), y+ascent(BodySize), p.style(BodySize, font.Bold, titleColor))
	}
	if b.Title != "" {
		titleH = LabelLine
	}

	if len(b.Items) == 0 {
		if titleH > 0 {
			out.add(titleH, ListGap, drawTitle)
		}
		return out
	}

	indent := 4.0
	if b.Marker == block.Checkbox {
		indent = 5
	}

	for i, item := range b.Items {
		if b.Marker == block.Bullet {
			item = "• " + item
		}
		lines := p.wrap(item, p.cw()-indent, BodySize, font.Regular)
		if len(lines) == 0 {
			lines = []string{""}
		}

		top := 0.0
		if i == 0 {
			top = titleH
		}
		gap := 3.0
		if i == len(b.Items)-1 {
			gap = ListGap
		}

		out.add(top+p.m.Height(len(lines), BodySize), gap, func(c canvas.Canvas, y float64) {
			if top > 0 {
				drawTitle(c, y)
			}
			base := y + top + ascent(BodySize)
			switch b.Marker {
			case block.Checkbox:
				c.StrokeRect(canvas.R(p.left(), base-2.5, 3, 3), p.pal.Checkbox, 0.2)
			case block.Alert:
				c.Text([]string{"!"}, p.left(), base, p.style(BodySize, font.Bold, p.pal.Danger))
			}
			c.Text(lines, p.left()+indent, base, p.style(BodySize, font.Regular, p.pal.Dark))
		})
	}
	return out
}

func (p *planner) scoredItem(b block.ScoredItem) *plan {
	notes := p.wrap(b.Note, p.cw()-10, 8, font.Regular)
	h := 10.0
	if len(notes) > 0 {
		h = 14 + p.m.Height(len(notes), 8)
	}
	p.line(b.Title, p.cw()-p.m.StringWidth(b.Score, BodySize, font.Bold)-12, BodySize, font.Bold)

	out := &plan{}
	out.add(h, ScoredGap, func(c canvas.Canvas, y float64) {
		x := p.left()
		c.RoundedRect(canvas.R(x, y, p.cw(), h), 2, canvas.Stroked(p.pal.Border, 0.2))
		c.Text([]string{b.Title}, x+4, y+6, p.style(BodySize, font.Bold, p.pal.Dark))
		if b.Score != "" {
			score := p.style(BodySize, font.Bold, p.pal.Primary)
			score.Align = canvas.AlignRight
			c.Text([]string{b.Score}, p.right()-4, y+6, score)
		}
		c.Text(notes, x+4, y+12, p.style(8, font.Regular, p.pal.Gray))
	})
	return out
}

func (p *planner) card(b block.Card) *plan {
	metas := p.wrap(b.Meta, p.cw()-6, 9, font.Regular)
	bodies := p.wrap(b.Body, p.cw()-6, BodySize, font.Regular)

	metaH := p.m.Height(len(metas), 9)
	bodyH := p.m.Height(len(bodies), BodySize)
	between := 0.0
	if metaH > 0 && bodyH > 0 {
		between = 2
	}
	h := CardBar + 3 + metaH + between + bodyH + 4

	var badgeW float64
	if b.Badge != "" {
		badgeW = math.Max(18, p.m.StringWidth(b.Badge, 7, font.Regular)+6)
	}
	titleX := 4.0
	if b.Tag != "" {
		titleX = 4 + p.m.StringWidth(b.Tag, 9, font.Bold) + 4
		if titleX < 18 {
			titleX = 18
		}
	}
	p.line(b.Title, p.cw()-titleX-badgeW-4, 9, font.Bold)

	out := &plan{}
	out.add(h, CardGap, func(c canvas.Canvas, y float64) {
		x := p.left()
		c.RoundedRect(canvas.R(x, y, p.cw(), h), 2, canvas.Paint{
			Style:  canvas.FillStroke,
			Fill:   p.pal.White,
			Stroke: p.pal.Border,
		})
		c.RoundedRect(canvas.R(x, y, p.cw(), CardBar), 2, canvas.Filled(p.pal.Tone(b.Tone)))

		head := p.style(9, font.Bold, p.pal.White)
		if b.Tag != "" {
			c.Text([]string{b.Tag}, x+4, y+4.8, head)
		}
		c.Text([]string{b.Title}, x+titleX, y+4.8, head)

		if badgeW > 0 {
			bx := p.right() - badgeW
			c.RoundedRect(canvas.R(bx, y+1.2, badgeW, 4.5), 1, canvas.Filled(p.pal.Tone(b.Similarity.Tone())))
			c.Text([]string{b.Badge}, bx+3, y+4.6, p.style(7, font.Regular, p.pal.White))
		}

		top := y + CardBar + 3
		c.Text(metas, x+3, top+ascent(9), p.style(9, font.Regular, p.pal.Gray))
		top += metaH + between
		c.Text(bodies, x+3, top+ascent(BodySize), p.style(BodySize, font.Regular, p.pal.Dark))
	})
	return out
}

// qnaItem plans the question with its answer, then the tip box.
func (p *planner) qnaItem(b block.QnaItem) *plan {
	prefix := "Q. "
	if b.Index > 0 {
		prefix = fmt.Sprintf("Q%d. ", b.Index)
	}
	qs := p.wrap(prefix+b.Question, p.cw(), 11, font.Bold)
	as := p.wrap("A. "+b.Answer, p.cw()-4, BodySize, font.Regular)
	qH := p.m.Height(len(qs), 11)
	h := qH + 2 + p.m.Height(len(as), BodySize)

	separator := func(c canvas.Canvas, y float64) {
		c.Line(canvas.Pt(p.left(), y), canvas.Pt(p.right(), y), p.pal.Divider, 0.5)
	}

	out := &plan{}
	tip := strings.TrimSpace(b.Tip)
	gap := float64(QnaGap)
	if tip != "" {
		gap = ItemGap
	}
	out.add(h, gap, func(c canvas.Canvas, y float64) {
		c.Text(qs, p.left(), y+ascent(11), p.style(11, font.Bold, p.pal.Secondary))
		c.Text(as, p.left()+4, y+qH+2+ascent(BodySize), p.style(BodySize, font.Regular, p.pal.Primary))
		if tip == "" {
			separator(c, y+h+QnaGap/2)
		}
	})

	if tip != "" {
		tips := p.wrap("Tip: "+tip, p.cw()-12, 9, font.Regular)
		tipH := p.m.Height(len(tips), 9) + 6
		out.add(tipH, QnaGap, func(c canvas.Canvas, y float64) {
			c.RoundedRect(canvas.R(p.left()+4, y, p.cw()-4, tipH), 2, canvas.Paint{
				Style:  canvas.FillStroke,
				Fill:   p.pal.LightGray,
				Stroke: p.pal.Warning,
			})
			c.Text(tips, p.left()+8, y+3+ascent(9), p.style(9, font.Regular, p.pal.Gray))
			separator(c, y+tipH+QnaGap/2)
		})
	}
	return out
}

func (p *planner) placeholderBlock(b block.Placeholder) *plan {
	msg := b.Text
	if strings.TrimSpace(msg) == "" {
		msg = p.placeholder
	}
	lines := p.wrap(msg, p.cw(), BodySize, font.Regular)

	out := &plan{}
	out.add(p.m.Height(len(lines), BodySize), ListGap, func(c canvas.Canvas, y float64) {
		c.Text(lines, p.left(), y+ascent(BodySize), p.style(BodySize, font.Regular, p.pal.Gray))
	})
	return out
}
