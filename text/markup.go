package text

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// PlainText converts a text field that may carry HTML fragments (model
// output frequently does) into plain text. Tags are dropped, entities are
// decoded, block elements become line breaks and the result is NFC
// normalised so that decomposed Hangul measures and renders the same as
// precomposed input. Text without markup is only normalised.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return norm.NFC.String(s)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return norm.NFC.String(s)
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeTextContent(n, &sb)
	}

	out := strings.ReplaceAll(sb.String(), "\u00a0", " ")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out = blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")

	return norm.NFC.String(strings.Trim(out, "\n"))
}

func writeTextContent(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "br":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n• ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeTextContent(c, sb)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "ul", "ol", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n")
		}
	}
}
