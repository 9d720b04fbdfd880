package folio

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/folio/theme"
)

// renderOptions holds configuration for a render.
type renderOptions struct {
	subtitle string

	// date is stamped into the banner, the file name and the PDF info.
	// The zero value means the time of the render.
	date time.Time

	// Visual configuration; theme wins over themeFile
	theme     *theme.Theme
	themeFile string
	fontData  []byte
	fontFile  string

	// Preview rasterisation; zero pixelsPerMM disables previews
	pixelsPerMM float64

	logger *zap.Logger
	now    func() time.Time
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// clone creates a deep copy of renderOptions.
func (o renderOptions) clone() renderOptions {
	newOpts := o
	if o.theme != nil {
		newOpts.theme = o.theme.Clone()
	}
	// Font data is never mutated, so it is shared
	return newOpts
}

// renderDate returns the configured date or the current time.
func (o renderOptions) renderDate() time.Time {
	if !o.date.IsZero() {
		return o.date
	}
	return o.now()
}
