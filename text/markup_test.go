package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "중소기업 요건 충족", "중소기업 요건 충족"},
		{"entities", "R&amp;D 과제", "R&D 과제"},
		{"bare less-than", "3 < 5년", "3 < 5년"},
		{"break", "첫째<br>둘째", "첫째\n둘째"},
		{"paragraphs", "<p>하나</p><p>둘</p>", "하나\n둘"},
		{"list", "<ul><li>a</li><li>b</li></ul>", "• a\n• b"},
		{"inline tags", "<b>굵게</b> 표시", "굵게 표시"},
		{"script dropped", "보임<script>alert(1)</script>", "보임"},
		{"blank lines collapsed", "<p>a</p><br><br><br><p>b</p>", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestPlainText_NormalizesHangul(t *testing.T) {
	// 한 as conjoining jamo (U+1112 U+1161 U+11AB)
	decomposed := "\u1112\u1161\u11ab"
	assert.Equal(t, "\ud55c", PlainText(decomposed))
}
