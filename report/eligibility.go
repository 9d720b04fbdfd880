package report

import (
	"fmt"
	"strconv"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/theme"
)

// EligibilityResponse is the aggregated notice analysis.
type EligibilityResponse struct {
	NoticeID                 int                `json:"notice_id,omitempty"`
	Eligibility              EligibilityResult  `json:"eligibility"`
	ResearchIntent           ResearchIntent     `json:"research_intent"`
	EvaluationWeightAnalysis EvaluationAnalysis `json:"evaluation_weight_analysis"`
	Deliverables             []string           `json:"deliverables"`
	MandatoryRequirements    []string           `json:"mandatory_requirements"`
}

// EligibilityResult is the overall verdict with per-requirement judgments.
type EligibilityResult struct {
	Status          string     `json:"status"`
	Summary         string     `json:"summary"`
	Judgments       []Judgment `json:"judgments"`
	MissingInfo     []string   `json:"missing_info"`
	WarningItems    []string   `json:"warning_items"`
	Recommendations []string   `json:"recommendations"`
}

// Judgment is the verdict on a single requirement.
type Judgment struct {
	ID                    int     `json:"id"`
	Category              string  `json:"category"`
	RequirementText       string  `json:"requirement_text"`
	Judgment              string  `json:"judgment"`
	Reason                string  `json:"reason"`
	CompanyInfoUsed       string  `json:"company_info_used"`
	QuoteFromAnnouncement string  `json:"quote_from_announcement"`
	AdditionalAction      *string `json:"additional_action"`
}

// ResearchIntent describes why the program exists.
type ResearchIntent struct {
	PolicyBackground string   `json:"policy_background"`
	TargetIssues     []string `json:"target_issues"`
}

// EvaluationAnalysis summarises how proposals are scored.
type EvaluationAnalysis struct {
	Summary         string         `json:"summary"`
	HighWeightItems []WeightedItem `json:"high_weight_items"`
}

// WeightedItem is a heavily weighted evaluation criterion.
type WeightedItem struct {
	Item     string `json:"item"`
	Points   Text   `json:"points"`
	Strategy string `json:"strategy"`
}

const (
	eligibilityTitle = "공고문 분석 리포트"

	emptyJudgments  = "자격 요건 데이터가 없습니다."
	emptyActions    = "확인 및 조치 사항이 없습니다."
	emptyEvaluation = "평가 지표 데이터가 없습니다."
	emptyIntent     = "과제 배경 데이터가 없습니다."
	emptyDocuments  = "제출 문서 데이터가 없습니다."
)

// Report lays out the analysis: verdict card, judgment counts, then the
// checklist, action items, evaluation weights, program intent and
// submission sections.
func (r *EligibilityResponse) Report() Report {
	el := r.Eligibility
	status := block.ParseJudgment(el.Status)

	statusLabel := status.Label()
	if status == block.JudgmentUnknown {
		statusLabel = orDash(el.Status)
	}

	var pass, fail, hold int
	rows := make([]block.Block, 0, len(el.Judgments))
	for _, j := range el.Judgments {
		switch block.ParseJudgment(j.Judgment) {
		case block.Pass:
			pass++
		case block.Fail:
			fail++
		case block.Hold:
			hold++
		}
		rows = append(rows, requirementRow(j))
	}

	out := []block.Block{
		block.SummaryCard{
			StatusLabel: statusLabel,
			StatusTone:  status.Tone(),
			Caption:     "판정 결과",
			Heading:     "종합 요약",
			SummaryText: orDash(el.Summary),
		},
		block.StatRow{
			Columns: 4,
			Items: []block.Stat{
				{Label: "총 항목", Value: strconv.Itoa(len(el.Judgments)), Tone: theme.Secondary},
				{Label: "충족", Value: strconv.Itoa(pass), Tone: theme.Primary},
				{Label: "미충족", Value: strconv.Itoa(fail), Tone: theme.Danger},
				{Label: "검토 필요", Value: strconv.Itoa(hold), Tone: theme.Warning},
			},
		},
	}

	out = section(out, "자격요건 상세 체크리스트", "📋", emptyJudgments, rows...)
	out = section(out, "주요 확인 및 조치 사항", "⚠️", emptyActions, r.actions()...)
	out = section(out, "평가 지표 및 배점 분석", "📊", emptyEvaluation, r.evaluation()...)
	out = section(out, "과제 배경 및 의도", "🎯", emptyIntent, r.intent()...)
	out = section(out, "제출 문서 및 필수 준수사항", "📂", emptyDocuments, r.documents()...)

	rep := Report{Kind: Eligibility, Title: eligibilityTitle, Blocks: out}
	if r.NoticeID > 0 {
		rep.Subtitle = fmt.Sprintf("Notice ID: %d", r.NoticeID)
	}
	return rep
}

func requirementRow(j Judgment) block.RequirementRow {
	verdict := block.ParseJudgment(j.Judgment)
	badge := verdict.Label()
	if verdict == block.JudgmentUnknown {
		badge = orDash(j.Judgment)
	}

	primary := orDash(j.RequirementText)
	if c := clean(j.Category); c != "" {
		primary = "[" + c + "] " + primary
	}

	var details []string
	add := func(label, value string) {
		if v := clean(value); v != "" {
			details = append(details, label+": "+v)
		}
	}
	add("판단 근거", j.Reason)
	add("활용 기업 정보", j.CompanyInfoUsed)
	add("관련 문구", j.QuoteFromAnnouncement)
	if j.AdditionalAction != nil {
		add("추가 조치", *j.AdditionalAction)
	}

	return block.RequirementRow{
		BadgeLabel:  badge,
		Judgment:    verdict,
		PrimaryText: primary,
		DetailLines: details,
	}
}

func (r *EligibilityResponse) actions() []block.Block {
	boxes := []struct {
		title string
		tone  theme.Tone
		items []string
	}{
		{"확인 필요 정보", theme.Warning, r.Eligibility.MissingInfo},
		{"주의 사항", theme.Danger, r.Eligibility.WarningItems},
		{"추천 전략", theme.Secondary, r.Eligibility.Recommendations},
	}

	var out []block.Block
	for _, b := range boxes {
		items := cleanAll(b.items)
		if len(items) == 0 {
			continue
		}
		out = append(out, block.CalloutBox{Title: b.title, Tone: b.tone, Items: items})
	}
	return out
}

func (r *EligibilityResponse) evaluation() []block.Block {
	ev := r.EvaluationWeightAnalysis

	var out []block.Block
	if s := clean(ev.Summary); s != "" {
		out = append(out, block.Paragraph{Text: s})
	}
	for _, it := range ev.HighWeightItems {
		item := block.ScoredItem{Title: orDash(it.Item)}
		if p := clean(it.Points.String()); p != "" {
			item.Score = "[" + p + "점]"
		}
		if s := clean(it.Strategy); s != "" {
			item.Note = "└ 전략: " + s
		}
		out = append(out, item)
	}
	return out
}

func (r *EligibilityResponse) intent() []block.Block {
	ri := r.ResearchIntent

	var out []block.Block
	if bg := clean(ri.PolicyBackground); bg != "" {
		out = append(out, block.Paragraph{Label: "정책 배경:", Text: bg})
	}
	if issues := cleanAll(ri.TargetIssues); len(issues) > 0 {
		out = append(out, block.BulletList{Title: "해결하려는 주요 이슈", Marker: block.Bullet, Items: issues})
	}
	return out
}

func (r *EligibilityResponse) documents() []block.Block {
	var out []block.Block
	if docs := cleanAll(r.Deliverables); len(docs) > 0 {
		out = append(out, block.BulletList{Title: "필수 제출 문서", Marker: block.Checkbox, Items: docs})
	}
	if reqs := cleanAll(r.MandatoryRequirements); len(reqs) > 0 {
		out = append(out, block.BulletList{Title: "필수 준수사항 (주의)", Marker: block.Alert, Items: reqs})
	}
	return out
}
