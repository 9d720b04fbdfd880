package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/block"
)

// summaryWidth is the terminal width of the block summary column.
const summaryWidth = 48

func runLayout(cmd *cobra.Command, args []string) error {
	rep, err := loadReport(cmd, args[0])
	if err != nil {
		return err
	}
	doc, err := document(rep)
	if err != nil {
		return err
	}

	res, _, err := doc.Layout()
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  (%d pages)\n\n", rep.Title, res.FileName, res.Pages)
	writeTable(out, rep.Blocks, res)

	if len(res.Warnings) > 0 {
		fmt.Fprintln(out)
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
	}
	return nil
}

// writeTable prints one row per placed block. Columns are padded by
// display width so Hangul and emoji titles stay aligned.
func writeTable(w io.Writer, blocks []block.Block, res folio.Result) {
	rows := [][]string{{"#", "KIND", "PAGE", "Y", "SUMMARY"}}
	for _, p := range res.Blocks {
		page := strconv.Itoa(p.Start.Page + 1)
		if p.End.Page != p.Start.Page {
			page += "-" + strconv.Itoa(p.End.Page+1)
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			p.Kind.String(),
			page,
			fmt.Sprintf("%.1f", p.Start.Y),
			runewidth.Truncate(describe(blocks[p.Index]), summaryWidth, "…"),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// describe returns the most telling text of a block on one line.
func describe(b block.Block) string {
	var s string
	switch v := b.(type) {
	case block.SectionHeader:
		s = strings.TrimSpace(v.Icon + " " + v.Title)
	case block.SummaryCard:
		s = v.StatusLabel + ": " + v.SummaryText
	case block.StatRow:
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = it.Label + " " + it.Value
		}
		s = strings.Join(parts, ", ")
	case block.RequirementRow:
		s = "[" + v.Judgment.Label() + "] " + v.PrimaryText
	case block.CalloutBox:
		s = fmt.Sprintf("%s (%d)", v.Title, block.Items(b))
	case block.KeyValueGrid:
		s = fmt.Sprintf("%d rows", block.Items(b))
	case block.NumberedList:
		s = fmt.Sprintf("%d items", block.Items(b))
	case block.Paragraph:
		s = strings.TrimSpace(v.Label + " " + v.Text)
	case block.BulletList:
		s = fmt.Sprintf("%s (%d)", v.Title, block.Items(b))
	case block.ScoredItem:
		s = v.Title + " " + v.Score
	case block.Card:
		s = strings.TrimSpace(v.Tag + " " + v.Title)
	case block.QnaItem:
		s = v.Question
	case block.Placeholder:
		s = v.Text
	}
	return strings.Join(strings.Fields(s), " ")
}
