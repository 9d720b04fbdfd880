package folio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/canvas"
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/render"
	"github.com/tsawler/folio/theme"
)

// Document provides a fluent interface for rendering a block list to PDF.
// Each configuration method returns a new Document instance, making it
// safe for concurrent use and allowing method chaining.
type Document struct {
	title  string
	blocks []block.Block

	// Configuration
	options renderOptions
	id      uuid.UUID

	// Accumulated error (fail-fast)
	err error
}

// Result summarises a finished render.
type Result struct {
	render.Result

	// ID identifies the render in logs and in the PDF keywords
	ID uuid.UUID

	// Date is the date stamped into the banner and the file name
	Date time.Time

	// FileName is the suggested output name, {title}_{YYYY-MM-DD}.pdf
	FileName string
}

// Output is a rendered document held in memory.
type Output struct {
	Result

	PDF []byte

	// Previews holds one PNG per page, nil unless Preview was configured
	Previews [][]byte
}

// clone creates a shallow copy of the Document with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (d *Document) clone() *Document {
	return &Document{
		title:   d.title,
		blocks:  append([]block.Block(nil), d.blocks...),
		options: d.options.clone(),
		id:      d.id,
		err:     d.err,
	}
}

// ============================================================================
// Configuration Methods (return new Document instance)
// ============================================================================

// Blocks appends blocks to the document. Multiple calls are cumulative.
func (d *Document) Blocks(blocks ...block.Block) *Document {
	newDoc := d.clone()
	newDoc.blocks = append(newDoc.blocks, blocks...)
	return newDoc
}

// Subtitle sets the second banner line.
func (d *Document) Subtitle(s string) *Document {
	newDoc := d.clone()
	newDoc.options.subtitle = s
	return newDoc
}

// Date fixes the date printed in the banner and used in the file name.
// Without it the time of the render is used.
func (d *Document) Date(t time.Time) *Document {
	newDoc := d.clone()
	newDoc.options.date = t
	return newDoc
}

// Theme sets the visual configuration. It takes precedence over ThemeFile.
func (d *Document) Theme(th *theme.Theme) *Document {
	newDoc := d.clone()
	if th != nil {
		newDoc.options.theme = th.Clone()
	}
	return newDoc
}

// ThemeFile loads the visual configuration from a YAML file at render
// time. A relative font_file in it is resolved against the file's
// directory.
//
// Example:
//
//	pdf, _, err := folio.New("t").Blocks(b).ThemeFile("theme.yaml").PDF()
func (d *Document) ThemeFile(path string) *Document {
	newDoc := d.clone()
	newDoc.options.themeFile = path
	return newDoc
}

// Font embeds a TrueType font program, overriding the theme's font_file.
// The same program drives measurement so wrapping matches the output.
func (d *Document) Font(data []byte) *Document {
	newDoc := d.clone()
	newDoc.options.fontData = data
	return newDoc
}

// FontFile embeds the TrueType font at path, overriding the theme's
// font_file. Data set with Font takes precedence.
func (d *Document) FontFile(path string) *Document {
	newDoc := d.clone()
	newDoc.options.fontFile = path
	return newDoc
}

// Preview also rasterises every page to PNG at the given resolution.
// Zero disables previews.
func (d *Document) Preview(pixelsPerMM float64) *Document {
	newDoc := d.clone()
	newDoc.options.pixelsPerMM = pixelsPerMM
	return newDoc
}

// Logger sets the logger for page breaks and render summaries.
func (d *Document) Logger(l *zap.Logger) *Document {
	newDoc := d.clone()
	if l != nil {
		newDoc.options.logger = l
	}
	return newDoc
}

// ID fixes the document ID. Without it every render gets a new random ID.
func (d *Document) ID(id uuid.UUID) *Document {
	newDoc := d.clone()
	newDoc.id = id
	return newDoc
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Title returns the banner title.
func (d *Document) Title() string {
	return d.title
}

// Err returns the error accumulated while building the document, if any.
func (d *Document) Err() error {
	return d.err
}

// setup is the resolved state of one render.
type setup struct {
	theme    *theme.Theme
	font     *font.TrueType
	engine   *render.Engine
	header   render.Header
	id       uuid.UUID
	date     time.Time
	fileName string
	log      *zap.Logger
}

// prepare resolves theme and font and builds the engine. No page is drawn
// before it succeeds.
func (d *Document) prepare(ctx context.Context) (*setup, error) {
	if d.err != nil {
		return nil, d.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(d.blocks) == 0 {
		return nil, ErrNoBlocks
	}

	th, err := d.resolveTheme()
	if err != nil {
		return nil, err
	}
	tt, err := d.resolveFont(th)
	if err != nil {
		return nil, err
	}

	id := d.id
	if id == uuid.Nil {
		id = uuid.New()
	}
	log := d.options.logger.With(zap.String("document_id", id.String()))

	cfg := render.Config{Theme: th, Logger: log, Metrics: th.CoreFont()}
	if tt != nil {
		cfg.Metrics = tt
	}
	engine, err := render.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	title := d.title
	if title == "" {
		title = th.FallbackTitle
	}
	date := d.options.renderDate()

	return &setup{
		theme:  th,
		font:   tt,
		engine: engine,
		header: render.Header{
			Title:    title,
			Subtitle: d.options.subtitle,
			Date:     BannerDate(date),
		},
		id:       id,
		date:     date,
		fileName: fileName(d.title, date, th.FallbackTitle),
		log:      log,
	}, nil
}

func (d *Document) resolveTheme() (*theme.Theme, error) {
	if d.options.theme != nil {
		return d.options.theme.Clone(), nil
	}
	if d.options.themeFile == "" {
		return theme.Default(), nil
	}

	th, err := theme.LoadFile(d.options.themeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	if th.FontFile != "" && !filepath.IsAbs(th.FontFile) {
		th.FontFile = filepath.Join(filepath.Dir(d.options.themeFile), th.FontFile)
	}
	return th, nil
}

func (d *Document) resolveFont(th *theme.Theme) (*font.TrueType, error) {
	switch {
	case len(d.options.fontData) > 0:
		tt, err := font.ParseTrueType(d.options.fontData)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		return tt, nil
	case d.options.fontFile != "":
		tt, err := font.LoadTrueType(d.options.fontFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		return tt, nil
	case th.FontFile != "":
		tt, err := font.LoadTrueType(th.FontFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		return tt, nil
	default:
		return nil, nil
	}
}

func (s *setup) result(res render.Result) Result {
	return Result{Result: res, ID: s.id, Date: s.date, FileName: s.fileName}
}

// Layout runs the layout without producing output and returns the
// recorded drawing operations. It is the cheapest way to check page
// counts and warnings.
func (d *Document) Layout() (Result, *canvas.Recorder, error) {
	s, err := d.prepare(context.Background())
	if err != nil {
		return Result{}, nil, err
	}

	rec := canvas.NewRecorder()
	res, err := s.engine.Render(rec, s.header, d.blocks)
	if err != nil {
		return Result{}, nil, err
	}
	return s.result(res), rec, nil
}

// Render lays the document out once and returns the PDF and, when
// configured, the page previews drawn from the same pass.
func (d *Document) Render(ctx context.Context) (*Output, error) {
	s, err := d.prepare(ctx)
	if err != nil {
		return nil, err
	}

	var fontData []byte
	if s.font != nil {
		fontData = s.font.Data
	}

	pdf, err := canvas.NewPDF(canvas.PDFConfig{
		Metrics:      s.theme.Metrics(),
		FontData:     fontData,
		FontFamily:   s.theme.CoreFont().Name,
		Title:        s.header.Title,
		Subject:      s.header.Subtitle,
		Author:       "folio",
		Keywords:     "folio:" + s.id.String(),
		CreationDate: s.date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	var target canvas.Canvas = pdf
	var raster *canvas.Raster
	if d.options.pixelsPerMM > 0 {
		raster, err = canvas.NewRaster(canvas.RasterConfig{
			Metrics:     s.theme.Metrics(),
			PixelsPerMM: d.options.pixelsPerMM,
			FontData:    fontData,
			Background:  s.theme.Palette.White,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create preview: %w", err)
		}
		target = canvas.NewMulti(pdf, raster)
	}

	res, err := s.engine.Render(target, s.header, d.blocks)
	if err != nil {
		return nil, err
	}

	data, err := pdf.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	out := &Output{Result: s.result(res), PDF: data}

	if raster != nil {
		out.Previews = make([][]byte, 0, raster.PageCount())
		for i := 0; i < raster.PageCount(); i++ {
			var buf bytes.Buffer
			if err := raster.EncodePNG(i, &buf); err != nil {
				return nil, fmt.Errorf("failed to encode preview page %d: %w", i+1, err)
			}
			out.Previews = append(out.Previews, buf.Bytes())
		}
	}

	s.log.Debug("document rendered",
		zap.String("file", out.FileName),
		zap.Int("bytes", len(out.PDF)),
		zap.Int("previews", len(out.Previews)))
	return out, nil
}

// PDF renders the document and returns the PDF bytes.
//
// Example:
//
//	pdf, res, err := folio.New("t").Blocks(b).PDF()
func (d *Document) PDF() ([]byte, Result, error) {
	out, err := d.Render(context.Background())
	if err != nil {
		return nil, Result{}, err
	}
	return out.PDF, out.Result, nil
}

// Save renders the document into dir under its file name and returns the
// path. Output is written to a temporary file first and renamed into
// place only after the render succeeded, so a failed render leaves no
// file behind. Previews, when configured, are saved next to the PDF as
// {name}_p{page}.png. ctx is checked before layout starts and again
// before anything is written.
func (d *Document) Save(ctx context.Context, dir string) (string, Result, error) {
	out, err := d.Render(ctx)
	if err != nil {
		return "", Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return "", Result{}, err
	}

	path := filepath.Join(dir, out.FileName)
	files := []outputFile{{path: path, data: out.PDF}}
	for i, png := range out.Previews {
		files = append(files, outputFile{path: PreviewName(path, i+1), data: png})
	}
	if err := writeAll(files); err != nil {
		return "", Result{}, err
	}

	d.options.logger.Info("document saved",
		zap.String("document_id", out.ID.String()),
		zap.String("path", path),
		zap.Int("pages", out.Pages))
	return path, out.Result, nil
}

// outputFile is one file written by Save.
type outputFile struct {
	path string
	data []byte
}

// writeAll stages every file as a temporary file next to its target and
// renames them into place only once all were written. Files are renamed
// in reverse order so the first one, the PDF, appears last. When a rename
// fails the files already renamed are removed again.
func writeAll(files []outputFile) error {
	tmps := make([]string, len(files))
	discard := func() {
		for _, tmp := range tmps {
			if tmp != "" {
				os.Remove(tmp)
			}
		}
	}

	for i, f := range files {
		tmp, err := stage(f.path, f.data)
		if err != nil {
			discard()
			return err
		}
		tmps[i] = tmp
	}

	var renamed []string
	for i := len(files) - 1; i >= 0; i-- {
		if err := os.Rename(tmps[i], files[i].path); err != nil {
			discard()
			for _, p := range renamed {
				os.Remove(p)
			}
			return fmt.Errorf("failed to save %s: %w", filepath.Base(files[i].path), err)
		}
		tmps[i] = ""
		renamed = append(renamed, files[i].path)
	}
	return nil
}

// stage writes data to a temporary file in path's directory and returns
// its name.
func stage(path string, data []byte) (string, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", base, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", base, err)
	}
	return name, nil
}
