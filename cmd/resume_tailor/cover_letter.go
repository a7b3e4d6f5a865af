package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	coverTailored string
	coverJobTitle string
	coverJobPath  string
	coverJobURL   string
	coverOut      string
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter from a tailored resume",
	Long:  `Generate a cover letter for a job from a tailored resume document previously produced by the tailor command.`,
	RunE:  runCoverLetter,
}

func init() {
	coverLetterCmd.Flags().StringVar(&coverTailored, "tailored", "", "Path to a tailored resume JSON document (required)")
	coverLetterCmd.Flags().StringVar(&coverJobTitle, "job-title", "", "Target job title (required)")
	coverLetterCmd.Flags().StringVar(&coverJobPath, "job", "", "Path to a job description text file")
	coverLetterCmd.Flags().StringVar(&coverJobURL, "job-url", "", "URL of a job posting to fetch")
	coverLetterCmd.Flags().StringVar(&coverOut, "out", "", "Output file for the cover letter (default: stdout)")
	_ = coverLetterCmd.MarkFlagRequired("tailored")
	_ = coverLetterCmd.MarkFlagRequired("job-title")
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	if (coverJobPath == "") == (coverJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	data, err := os.ReadFile(coverTailored)
	if err != nil {
		return fmt.Errorf("failed to read tailored document %s: %w", coverTailored, err)
	}
	var tailored types.ResumeDocument
	if err := json.Unmarshal(data, &tailored); err != nil {
		return fmt.Errorf("invalid tailored document %s: %w", coverTailored, err)
	}

	jobDescription, err := loadJobDescription(cmd, coverJobPath, coverJobURL)
	if err != nil {
		return err
	}

	engine := tailoring.NewEngine()
	text, err := engine.CoverLetter(cmd.Context(), &tailored, coverJobTitle, jobDescription)
	if err != nil {
		return fmt.Errorf("cover letter generation failed: %w", err)
	}

	if coverOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(coverOut, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", coverOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cover letter written to %s\n", coverOut)
	return nil
}
