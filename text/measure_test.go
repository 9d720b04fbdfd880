package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/folio/font"
)

func newTestMeasurer() *Measurer {
	return NewMeasurer(font.Helvetica())
}

func TestStringWidth(t *testing.T) {
	m := newTestMeasurer()

	// "aaa" = 3 × 556 units at 10pt
	assert.InDelta(t, 3*556.0/1000*10*PtToMM, m.StringWidth("aaa", 10, font.Regular), 1e-9)
	assert.Zero(t, m.StringWidth("", 10, font.Regular))
	assert.Greater(t, m.StringWidth("Total", 10, font.Bold), m.StringWidth("Total", 10, font.Regular))
}

func TestWrap_GreedyPacking(t *testing.T) {
	m := newTestMeasurer()

	// "aaa aaa" is ~12.75mm at 10pt, "aaa" ~5.88mm.
	assert.Equal(t, []string{"aaa aaa", "aaa"}, m.Wrap("aaa aaa aaa", 13, 10, font.Regular))
	assert.Equal(t, []string{"aaa", "aaa", "aaa"}, m.Wrap("aaa aaa aaa", 12, 10, font.Regular))
	assert.Equal(t, []string{"aaa aaa aaa"}, m.Wrap("aaa aaa aaa", 100, 10, font.Regular))
}

func TestWrap_LongTokenOnOwnLine(t *testing.T) {
	m := newTestMeasurer()

	long := strings.Repeat("b", 20)
	lines := m.Wrap("a "+long+" c", 10, 10, font.Regular)

	require.Equal(t, []string{"a", long, "c"}, lines)
	assert.Equal(t, []string{long}, m.Overflowing(lines, 10, 10, font.Regular))
}

func TestWrap_Paragraphs(t *testing.T) {
	m := newTestMeasurer()

	lines := m.Wrap("• first\n\n• second", 100, 10, font.Regular)
	assert.Equal(t, []string{"• first", "", "• second"}, lines)

	lines = m.Wrap("one\r\ntwo", 100, 10, font.Regular)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestWrap_EmptyInput(t *testing.T) {
	m := newTestMeasurer()

	assert.Empty(t, m.Wrap("", 100, 10, font.Regular))
	assert.Empty(t, m.Wrap("   \t ", 100, 10, font.Regular))
}

func TestWrap_CollapsesWhitespace(t *testing.T) {
	m := newTestMeasurer()

	assert.Equal(t, []string{"a b c"}, m.Wrap("  a   b\tc  ", 100, 10, font.Regular))
}

func TestWrap_Hangul(t *testing.T) {
	m := newTestMeasurer()

	// Each syllable is a full em: 3.527mm at 10pt.
	lines := m.Wrap("자격 요건 충족 여부", 16, 10, font.Regular)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, m.Fits(line, 16, 10, font.Regular), "line %q overflows", line)
	}
	assert.Equal(t, "자격 요건 충족 여부", strings.Join(lines, " "))
}

func TestWrap_Idempotent(t *testing.T) {
	m := newTestMeasurer()

	inputs := []string{
		"The quick brown fox jumps over the lazy dog",
		"• 판단 근거: 중소기업 기본법에 따른 중소기업으로 확인됨\n\n• 관련 문구: 신청 자격은 중소기업에 한함",
		"supercalifragilisticexpialidocious is a long word among short ones",
		"line one\nline two\n\nline four",
		"a",
	}
	widths := []float64{5, 20, 45, 80, 180}
	sizes := []float64{8, 10, 12}

	for _, in := range inputs {
		for _, w := range widths {
			for _, size := range sizes {
				for _, weight := range []font.Weight{font.Regular, font.Bold} {
					first := m.Wrap(in, w, size, weight)
					second := m.Wrap(strings.Join(first, "\n"), w, size, weight)
					assert.Equal(t, first, second, "input=%q width=%v size=%v", in, w, size)
				}
			}
		}
	}
}

func TestWrap_Deterministic(t *testing.T) {
	m := newTestMeasurer()
	in := "반복 측정 결과가 항상 같아야 레이아웃을 재현할 수 있습니다"

	first := m.Wrap(in, 30, 10, font.Regular)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Wrap(in, 30, 10, font.Regular))
	}
}

func TestEstimateHeight(t *testing.T) {
	assert.InDelta(t, 3*10*0.3527*1.6, EstimateHeight(3, 10, 1.6), 1e-9)
	assert.InDelta(t, 8*0.3527*1.6, EstimateHeight(1, 8, 0), 1e-9)
	assert.Zero(t, EstimateHeight(0, 10, 1.6))
	assert.Zero(t, EstimateHeight(-2, 10, 1.6))
}

func TestMeasurer_LineHeight(t *testing.T) {
	m := NewMeasurerWithFactor(nil, 2)

	assert.Equal(t, 2.0, m.LineHeightFactor())
	assert.InDelta(t, 10*PtToMM*2, m.LineHeight(10), 1e-9)
	assert.InDelta(t, 4*10*PtToMM*2, m.Height(4, 10), 1e-9)
	assert.NotNil(t, m.Metrics())
}
