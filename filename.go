package folio

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/folio/report"
	"github.com/tsawler/folio/theme"
)

// SanitizeTitle removes \ / : * ? " < > | and control characters from a
// title and trims it. An empty result yields the default fallback title.
func SanitizeTitle(title string) string {
	return report.SafeTitle(title, theme.Default().FallbackTitle)
}

// FileName returns {sanitized title}_{YYYY-MM-DD}.pdf.
func FileName(title string, date time.Time) string {
	return fileName(title, date, theme.Default().FallbackTitle)
}

func fileName(title string, date time.Time, fallback string) string {
	return report.SafeTitle(title, fallback) + "_" + date.Format("2006-01-02") + ".pdf"
}

// PreviewName derives the PNG name for a page (1-based) from the PDF
// path: report_2024-01-05.pdf becomes report_2024-01-05_p1.png.
func PreviewName(pdfPath string, page int) string {
	return fmt.Sprintf("%s_p%d.png", strings.TrimSuffix(pdfPath, ".pdf"), page)
}

// BannerDate formats a date the way the banner prints it, "2024. 1. 5.".
func BannerDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
