// Command folio renders analysis reports to PDF.
//
//	folio render eligibility.json --out reports/
//	folio layout rfp.json
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/report"
)

var (
	verbose   bool
	themeFile string
	fontFile  string
	kindName  string
	timeout   time.Duration

	outDir      string
	previewPPMM float64
	dateFlag    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Render analysis reports to paginated PDF documents",
	Long: `folio lays out analysis reports (eligibility, RFP comparison,
presentation script, slide deck) onto A4 pages and writes them as PDF.

Input is the JSON response of the analysis service. The report kind is
detected from its keys unless --kind is given.

Without --font (or a theme font_file) text is drawn with the core
Helvetica font, which cannot show Hangul; such renders print a
missing_glyph warning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [input.json]",
	Short: "Render a report to PDF",
	Long: `Renders a report JSON file ("-" reads stdin) into
{title}_{YYYY-MM-DD}.pdf in the output directory. Nothing is written when
the render fails.

Example:
  folio render notice.json --out reports --preview 4`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var layoutCmd = &cobra.Command{
	Use:   "layout [input.json]",
	Short: "Print where every block lands without writing a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&themeFile, "theme", "t", "", "Theme YAML file")
	rootCmd.PersistentFlags().StringVarP(&fontFile, "font", "f", "", "TrueType font embedded in the PDF (needed for Hangul text)")
	rootCmd.PersistentFlags().StringVarP(&kindName, "kind", "k", "", "Report kind: eligibility, rfp, script, deck (default: detect)")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Report date as YYYY-MM-DD (default: today)")

	renderCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	renderCmd.Flags().Float64Var(&previewPPMM, "preview", 0, "Also write PNG previews at this many pixels per mm")
	renderCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// loadReport decodes the input into a report using the --kind flag.
func loadReport(cmd *cobra.Command, name string) (report.Report, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return report.Report{}, err
	}

	kind := report.Unknown
	if kindName != "" {
		kind = report.ParseKind(kindName)
		if kind == report.Unknown {
			return report.Report{}, fmt.Errorf("unknown report kind %q", kindName)
		}
	}

	src, err := report.Decode(kind, data)
	if err != nil {
		return report.Report{}, err
	}
	return src.Report(), nil
}

// document applies the shared flags to a report.
func document(rep report.Report) (*folio.Document, error) {
	doc := folio.FromReport(rep).Logger(logger)
	if themeFile != "" {
		doc = doc.ThemeFile(themeFile)
	}
	if fontFile != "" {
		doc = doc.FontFile(fontFile)
	}
	if dateFlag != "" {
		date, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --date: %w", err)
		}
		doc = doc.Date(date)
	}
	return doc, nil
}
