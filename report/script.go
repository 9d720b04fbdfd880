package report

import (
	"fmt"
	"strconv"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/theme"
)

// ScriptResponse is a generated presentation script with expected
// questions.
type ScriptResponse struct {
	NoticeID int           `json:"notice_id,omitempty"`
	Slides   []ScriptSlide `json:"slides"`
	Qna      []QnA         `json:"qna"`
}

// ScriptSlide is the narration for one slide.
type ScriptSlide struct {
	Page   Text   `json:"page"`
	Title  string `json:"title"`
	Script string `json:"script"`
}

// QnA is an expected question with a suggested answer.
type QnA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Tips     string `json:"tips"`
}

const (
	scriptTitle = "발표 스크립트 생성 결과"

	emptyScript = "데이터가 없습니다."
	noScript    = "(스크립트 없음)"
)

// Report lays out one card per slide followed by the question list.
func (r *ScriptResponse) Report() Report {
	out := []block.Block{
		block.SummaryCard{
			StatusLabel: "생성 완료",
			StatusTone:  theme.Primary,
			Caption:     "스크립트",
			Heading:     "생성 요약",
			SummaryText: fmt.Sprintf("총 %d장의 발표용 슬라이드 스크립트와 %d개의 예상 질문이 성공적으로 생성되었습니다.", len(r.Slides), len(r.Qna)),
		},
		block.StatRow{
			Columns: 2,
			Items: []block.Stat{
				{Label: "총 슬라이드", Value: strconv.Itoa(len(r.Slides)) + " 장", Tone: theme.Secondary},
				{Label: "예상 질문 수", Value: strconv.Itoa(len(r.Qna)) + " 개", Tone: theme.Warning},
			},
		},
	}

	slides := make([]block.Block, 0, len(r.Slides))
	for i, s := range r.Slides {
		page := clean(s.Page.String())
		if page == "" {
			page = strconv.Itoa(i + 1)
		}
		slides = append(slides, block.Card{
			Tag:   "Slide " + page,
			Title: orDash(s.Title),
			Body:  or(s.Script, noScript),
			Tone:  theme.Primary,
		})
	}
	out = section(out, "발표 스크립트", "🎤", emptyScript, slides...)

	qna := make([]block.Block, 0, len(r.Qna))
	for i, q := range r.Qna {
		qna = append(qna, block.QnaItem{
			Index:    i + 1,
			Question: orDash(q.Question),
			Answer:   orDash(q.Answer),
			Tip:      clean(q.Tips),
		})
	}
	out = section(out, "예상 질문 및 답변", "💬", emptyScript, qna...)

	rep := Report{Kind: Script, Title: scriptTitle, Blocks: out}
	if r.NoticeID > 0 {
		rep.Subtitle = fmt.Sprintf("Notice ID: %d", r.NoticeID)
	}
	return rep
}
