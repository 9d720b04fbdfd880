package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/theme"
)

// RFPResponse is a similar-RFP comparison. It decodes the bare report as
// well as the service envelopes around it ({"fastapi": {"data": ...}} and
// {"report": ..., "track_a": ..., "track_b": ...}).
type RFPResponse struct {
	NoticeID int
	Body     RFPReport
}

// RFPReport is the comparison body.
type RFPReport struct {
	SummaryOpinion   string      `json:"summary_opinion"`
	TrackAComparison []TrackItem `json:"track_a_comparison"`
	TrackBComparison []TrackItem `json:"track_b_comparison"`
	Strategies       []string    `json:"strategies"`
	Error            string      `json:"error"`
}

// TrackItem is one similar RFP.
type TrackItem struct {
	Year       Text   `json:"year"`
	Ministry   string `json:"ministry"`
	Title      string `json:"title"`
	Similarity string `json:"similarity"`
	Difference string `json:"difference"`
}

// UnmarshalJSON looks through envelopes until it finds the report body.
func (r *RFPResponse) UnmarshalJSON(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}

	for {
		if raw, ok := top["noticeId"]; ok && r.NoticeID == 0 {
			_ = json.Unmarshal(raw, &r.NoticeID)
		}
		if raw, ok := top["report"]; ok {
			return json.Unmarshal(raw, &r.Body)
		}
		if has(top, "summary_opinion", "track_a_comparison", "track_b_comparison", "strategies", "error") {
			break
		}
		inner, _, ok := unwrap(top)
		if !ok {
			break
		}
		top = inner
	}

	body, err := json.Marshal(top)
	if err != nil {
		return fmt.Errorf("failed to re-encode report body: %w", err)
	}
	return json.Unmarshal(body, &r.Body)
}

const (
	rfpTitle = "유사 RFP 분석 결과"

	emptyRFPSummary = "요약 데이터가 없습니다."
	emptyTrackA     = "동일 발주처 기준 유사 RFP가 없습니다."
	emptyTrackB     = "타 발주처 기준 유사 RFP가 없습니다."
	emptyStrategies = "전략 결과가 없습니다."
	unknownYear     = "연도 미상"
	unknownMinistry = "부처 미상"
	untitled        = "제목 없음"
)

// Report lays out the comparison: summary card, track counts, both tracks
// as cards and the recommended strategies.
func (r *RFPResponse) Report() Report {
	rep := r.Body
	strategies := cleanAll(rep.Strategies)

	out := []block.Block{
		block.SummaryCard{
			StatusLabel: "RFP",
			StatusTone:  theme.Secondary,
			Caption:     "분석",
			Heading:     "요약",
			SummaryText: or(rep.SummaryOpinion, emptyRFPSummary),
		},
	}
	if e := clean(rep.Error); e != "" {
		out = append(out, block.CalloutBox{Title: "분석 오류", Tone: theme.Danger, Items: []string{e}})
	}
	out = append(out, block.StatRow{
		Columns: 3,
		Items: []block.Stat{
			{Label: "Track A", Value: strconv.Itoa(len(rep.TrackAComparison)), Tone: theme.Secondary},
			{Label: "Track B", Value: strconv.Itoa(len(rep.TrackBComparison)), Tone: theme.Primary},
			{Label: "전략", Value: strconv.Itoa(len(strategies)), Tone: theme.Warning},
		},
	})

	out = section(out, "Track A: 동일 발주처 유사 RFP", "A", emptyTrackA, trackCards("A", theme.Secondary, rep.TrackAComparison)...)
	out = section(out, "Track B: 타 발주처 유사 RFP", "B", emptyTrackB, trackCards("B", theme.Primary, rep.TrackBComparison)...)

	var strat []block.Block
	if len(strategies) > 0 {
		strat = append(strat, block.NumberedList{Items: strategies})
	}
	out = section(out, "권장 차별화 전략", "S", emptyStrategies, strat...)

	res := Report{Kind: RFP, Title: rfpTitle, Blocks: out}
	if r.NoticeID > 0 {
		res.Subtitle = fmt.Sprintf("Notice ID: %d", r.NoticeID)
	}
	return res
}

func trackCards(track string, tone theme.Tone, items []TrackItem) []block.Block {
	out := make([]block.Block, 0, len(items))
	for i, it := range items {
		c := block.Card{
			Tag:   fmt.Sprintf("%s-%d", track, i+1),
			Title: or(it.Title, untitled),
			Meta:  fmt.Sprintf("(%s, %s)", or(it.Year.String(), unknownYear), or(it.Ministry, unknownMinistry)),
			Tone:  tone,
		}
		if sim := clean(it.Similarity); sim != "" {
			c.Badge = "유사도 " + sim
			c.Similarity = block.ParseSimilarity(sim)
		}
		if d := clean(it.Difference); d != "" {
			c.Body = "차이점: " + d
		}
		out = append(out, c)
	}
	return out
}
