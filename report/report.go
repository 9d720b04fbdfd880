package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/text"
)

// ErrUnknownKind is returned by Decode for a kind it has no adapter for.
var ErrUnknownKind = errors.New("report: unknown report kind")

// Dash is the literal shown for a missing optional string.
const Dash = "-"

// Report is an adapter's output: the banner texts and the ordered block
// list for the engine.
type Report struct {
	Kind     Kind
	Title    string
	Subtitle string
	Blocks   []block.Block
}

// Source is a decoded backend response that can be laid out.
type Source interface {
	Report() Report
}

// Decode parses a JSON response of the given kind. Unknown detects the
// kind from the document's keys. Service envelopes around the body are
// looked through for every kind.
func Decode(kind Kind, data []byte) (Source, error) {
	var body json.RawMessage
	if kind == Unknown {
		kind, body = locate(data, Unknown)
	} else {
		_, body = locate(data, kind)
	}

	var src Source
	switch kind {
	case Eligibility:
		src = &EligibilityResponse{}
	case RFP:
		// RFPResponse unwraps itself to pick up the envelope's noticeId.
		src, body = &RFPResponse{}, nil
	case Script:
		src = &ScriptResponse{}
	case Deck:
		src = &DeckResponse{}
	default:
		return nil, ErrUnknownKind
	}

	if body == nil {
		body = data
	}
	if err := json.Unmarshal(body, src); err != nil {
		return nil, fmt.Errorf("failed to decode %s report: %w", kind, err)
	}
	return src, nil
}

// Text is a JSON scalar read as a string. Backends send some fields (years,
// points, page numbers) as either numbers or strings; null decodes to "".
type Text string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*t = Text(data)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("report: expected scalar, got %s", data)
	}
	if f, err := n.Float64(); err == nil {
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// clean strips markup and surrounding whitespace. It may return "".
func clean(s string) string {
	return strings.TrimSpace(text.PlainText(s))
}

// orDash cleans s and substitutes Dash when nothing is left.
func orDash(s string) string {
	return or(s, Dash)
}

// or cleans s and substitutes fallback when nothing is left.
func or(s, fallback string) string {
	if c := clean(s); c != "" {
		return c
	}
	return fallback
}

// cleanAll cleans every entry and drops the empty ones. The result is
// never nil.
func cleanAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if c := clean(it); c != "" {
			out = append(out, c)
		}
	}
	return out
}

var unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f\x7f]`)

// SafeTitle removes characters that are not allowed in file names and
// trims the result. An empty result yields fallback.
func SafeTitle(title, fallback string) string {
	s := strings.TrimSpace(unsafeFileChars.ReplaceAllString(title, ""))
	if s == "" {
		return fallback
	}
	return s
}

// section appends a header followed by body, or by a placeholder when body
// is empty, so every section keeps at least one block.
func section(out []block.Block, title, icon, empty string, body ...block.Block) []block.Block {
	out = append(out, block.SectionHeader{Title: title, Icon: icon})
	if len(body) == 0 {
		return append(out, block.Placeholder{Text: empty})
	}
	return append(out, body...)
}
