package report

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/theme"
)

// DeckResponse is the metadata of a generated slide deck.
type DeckResponse struct {
	NoticeID     int         `json:"notice_id,omitempty"`
	DeckTitle    string      `json:"deck_title"`
	TotalSlides  int         `json:"total_slides"`
	PPTXPath     string      `json:"pptx_path"`
	Sections     []string    `json:"sections"`
	Slides       []DeckSlide `json:"slides"`
	DBSaved      bool        `json:"db_saved"`
	PPTXFilename string      `json:"pptx_filename"`
	DownloadURL  string      `json:"download_url"`
}

// DeckSlide outlines one slide.
type DeckSlide struct {
	Section    string   `json:"section"`
	SlideTitle string   `json:"slide_title"`
	KeyMessage string   `json:"key_message"`
	Bullets    []string `json:"bullets"`
}

const (
	deckTitle = "발표 자료 제작 결과"

	// DeckFallbackName names a deck whose title sanitises to nothing.
	DeckFallbackName = "발표자료"

	emptySections = "섹션 정보가 없습니다."
	emptySlides   = "슬라이드 정보가 없습니다."
)

// FileName is the local name to save the deck under: the sanitised deck
// title with a .pptx extension.
func (r *DeckResponse) FileName() string {
	return SafeTitle(r.DeckTitle, DeckFallbackName) + ".pptx"
}

// DownloadPath is where the deck can be fetched. The server-provided URL
// wins; otherwise it is derived from the stored file name. Empty when
// neither is known.
func (r *DeckResponse) DownloadPath() string {
	if u := strings.TrimSpace(r.DownloadURL); u != "" {
		return u
	}
	name := strings.TrimSpace(r.PPTXFilename)
	if name == "" && r.PPTXPath != "" {
		name = path.Base(strings.ReplaceAll(r.PPTXPath, `\`, "/"))
	}
	if name == "" || name == "." || name == "/" {
		return ""
	}
	return "/download/pptx/" + name
}

// Report lays out the deck summary, its section outline and one card per
// slide.
func (r *DeckResponse) Report() Report {
	total := r.TotalSlides
	if total == 0 {
		total = len(r.Slides)
	}

	rows := []block.KeyValue{
		{Label: "발표 제목", Value: orDash(r.DeckTitle)},
		{Label: "슬라이드 수", Value: strconv.Itoa(total) + "장"},
		{Label: "파일 경로", Value: orDash(r.PPTXPath)},
		{Label: "파일명", Value: r.FileName()},
	}
	if dl := r.DownloadPath(); dl != "" {
		rows = append(rows, block.KeyValue{Label: "다운로드", Value: dl})
	}

	out := section(nil, "발표 자료 정보", "🗂", "", block.KeyValueGrid{Rows: rows})

	var sections []block.Block
	if items := cleanAll(r.Sections); len(items) > 0 {
		sections = append(sections, block.NumberedList{Items: items})
	}
	out = section(out, "섹션 구성", "📑", emptySections, sections...)

	slides := make([]block.Block, 0, len(r.Slides))
	for i, s := range r.Slides {
		var body []string
		if km := clean(s.KeyMessage); km != "" {
			body = append(body, km)
		}
		for _, b := range cleanAll(s.Bullets) {
			body = append(body, "• "+b)
		}
		c := block.Card{
			Tag:   fmt.Sprintf("#%d", i+1),
			Title: orDash(s.SlideTitle),
			Body:  strings.Join(body, "\n"),
			Tone:  theme.Dark,
		}
		if sec := clean(s.Section); sec != "" {
			c.Meta = "섹션: " + sec
		}
		slides = append(slides, c)
	}
	out = section(out, "슬라이드 구성", "🖼", emptySlides, slides...)

	rep := Report{Kind: Deck, Title: deckTitle, Subtitle: orDash(r.DeckTitle), Blocks: out}
	if r.NoticeID > 0 {
		rep.Subtitle = fmt.Sprintf("%s  |  Notice ID: %d", rep.Subtitle, r.NoticeID)
	}
	return rep
}
