package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/folio"
)

func runRender(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	rep, err := loadReport(cmd, args[0])
	if err != nil {
		return err
	}
	doc, err := document(rep)
	if err != nil {
		return err
	}
	if previewPPMM > 0 {
		doc = doc.Preview(previewPPMM)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Info("Rendering report",
		zap.Stringer("kind", rep.Kind),
		zap.String("title", rep.Title),
		zap.Int("blocks", len(rep.Blocks)))

	path, res, err := doc.Save(ctx, outDir)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d pages)\n", path, res.Pages)
	if previewPPMM > 0 {
		for p := 1; p <= res.Pages; p++ {
			fmt.Fprintln(out, folio.PreviewName(path, p))
		}
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warnings: %s\n", folio.FormatWarnings(res.Warnings))
	}
	return nil
}
