package block

import (
	"strings"

	"github.com/tsawler/folio/theme"
)

// Judgment is the outcome of an eligibility check.
type Judgment int

const (
	JudgmentUnknown Judgment = iota
	Pass
	Fail
	Hold
)

// judgmentTones maps each judgment to its badge tone. Judgments missing
// from the table render gray.
var judgmentTones = map[Judgment]theme.Tone{
	Pass: theme.Primary,
	Fail: theme.Danger,
	Hold: theme.Warning,
}

var judgmentLabels = map[Judgment]string{
	Pass: "가능",
	Fail: "불가",
	Hold: "보류",
}

var judgmentAliases = map[string]Judgment{
	"가능":    Pass,
	"충족":    Pass,
	"pass":  Pass,
	"불가":    Fail,
	"미충족":   Fail,
	"fail":  Fail,
	"보류":    Hold,
	"확인 필요": Hold,
	"검토 필요": Hold,
	"hold":  Hold,
}

// ParseJudgment maps a judgment label to a Judgment. Unrecognised labels
// yield JudgmentUnknown.
func ParseJudgment(s string) Judgment {
	if j, ok := judgmentAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return j
	}
	return JudgmentUnknown
}

// Tone returns the badge tone for j, gray when j has none.
func (j Judgment) Tone() theme.Tone {
	if t, ok := judgmentTones[j]; ok {
		return t
	}
	return theme.Gray
}

// Label returns the canonical badge text for j, "-" when unknown.
func (j Judgment) Label() string {
	if l, ok := judgmentLabels[j]; ok {
		return l
	}
	return "-"
}

// String returns the label.
func (j Judgment) String() string {
	return j.Label()
}

// Similarity grades how close a reference document is.
type Similarity int

const (
	SimilarityUnknown Similarity = iota
	High
	Mid
	Low
)

var similarityTones = map[Similarity]theme.Tone{
	High: theme.Danger,
	Mid:  theme.Warning,
	Low:  theme.Primary,
}

// similarityKeys is checked in order; the first key contained in the label
// wins.
var similarityKeys = []struct {
	key string
	sim Similarity
}{
	{"high", High},
	{"상", High},
	{"mid", Mid},
	{"중", Mid},
	{"low", Low},
	{"하", Low},
}

// ParseSimilarity grades a similarity label such as "상", "중(60%)" or
// "High". Labels containing none of the known grades yield
// SimilarityUnknown.
func ParseSimilarity(s string) Similarity {
	s = strings.ToLower(s)
	for _, k := range similarityKeys {
		if strings.Contains(s, k.key) {
			return k.sim
		}
	}
	return SimilarityUnknown
}

// Tone returns the badge tone for s, gray when s has none.
func (s Similarity) Tone() theme.Tone {
	if t, ok := similarityTones[s]; ok {
		return t
	}
	return theme.Gray
}

// Marker selects the glyph drawn before each BulletList item.
type Marker int

const (
	Bullet Marker = iota
	Checkbox
	Alert
)
