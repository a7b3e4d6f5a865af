package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/export"
)

var (
	exportURL     string
	exportOut     string
	exportTimeout time.Duration
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Export a rendered resume page to PDF",
	Long:  `Print a rendered resume page to PDF with headless Chrome. Requires Chrome/Chromium on the system.`,
	RunE:  runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVar(&exportURL, "url", "http://localhost:8080/", "URL of the rendered resume page")
	exportPDFCmd.Flags().StringVar(&exportOut, "out", "resume.pdf", "Output PDF file")
	exportPDFCmd.Flags().DurationVar(&exportTimeout, "timeout", export.DefaultTimeout, "Rendering timeout")
	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	pdf, err := export.PrintPDF(cmd.Context(), exportURL, exportTimeout)
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s (%d bytes)\n", exportOut, len(pdf))
	return nil
}
