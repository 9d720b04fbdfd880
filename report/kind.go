package report

import (
	"encoding/json"
	"strings"
)

// Kind identifies a report type.
type Kind int

const (
	// Unknown indicates an unrecognized report.
	Unknown Kind = iota
	// Eligibility is the notice analysis aggregate.
	Eligibility
	// RFP is the similar-RFP comparison.
	RFP
	// Script is the presentation script with expected questions.
	Script
	// Deck is the generated slide deck metadata.
	Deck
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Eligibility:
		return "eligibility"
	case RFP:
		return "rfp"
	case Script:
		return "script"
	case Deck:
		return "deck"
	default:
		return "unknown"
	}
}

// Kinds lists every known report kind.
func Kinds() []Kind {
	return []Kind{Eligibility, RFP, Script, Deck}
}

// ParseKind maps a command-line name to a kind.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eligibility", "notice", "analysis":
		return Eligibility
	case "rfp":
		return RFP
	case "script", "qna":
		return Script
	case "deck", "ppt", "pptx":
		return Deck
	default:
		return Unknown
	}
}

// Detect inspects the top-level keys of a JSON document to determine the
// report kind. Envelopes ("fastapi", "data") are looked through.
// Returns Unknown if the kind cannot be determined.
func Detect(data []byte) Kind {
	k, _ := locate(data, Unknown)
	return k
}

// maxEnvelopes bounds how many envelope levels are looked through.
const maxEnvelopes = 3

// kindKeys lists the keys that identify each kind's body, in detection
// order.
var kindKeys = []struct {
	kind Kind
	keys []string
}{
	{Eligibility, []string{"eligibility", "research_intent", "evaluation_weight_analysis"}},
	{RFP, []string{"summary_opinion", "track_a_comparison", "track_b_comparison", "report"}},
	{Deck, []string{"deck_title", "pptx_path", "total_slides"}},
	{Script, []string{"slides", "qna"}},
}

// locate descends through envelopes until it reaches an object carrying
// the keys of want, or of any kind when want is Unknown. It returns the
// kind found and that object's raw JSON.
func locate(data []byte, want Kind) (Kind, json.RawMessage) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Unknown, nil
	}
	raw := json.RawMessage(data)

	for depth := 0; depth < maxEnvelopes; depth++ {
		for _, kk := range kindKeys {
			if (want == Unknown || want == kk.kind) && has(top, kk.keys...) {
				return kk.kind, raw
			}
		}

		inner, innerRaw, ok := unwrap(top)
		if !ok {
			return Unknown, nil
		}
		top, raw = inner, innerRaw
	}
	return Unknown, nil
}

func has(m map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// unwrap descends one envelope level.
func unwrap(m map[string]json.RawMessage) (map[string]json.RawMessage, json.RawMessage, bool) {
	for _, key := range envelopeKeys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(raw, &inner); err != nil || inner == nil {
			continue
		}
		return inner, raw, true
	}
	return nil, nil, false
}

var envelopeKeys = []string{"fastapi", "data"}
