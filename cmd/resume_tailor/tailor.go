package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/tailoring"
)

var (
	tailorResume   string
	tailorSkills   string
	tailorJobTitle string
	tailorJobPath  string
	tailorJobURL   string
	tailorOut      string
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor the canonical resume for a job",
	Long:  `Rewrite the canonical resume for a target job and write the tailored document as JSON. The job description is read from a file or fetched from a posting URL.`,
	RunE:  runTailor,
}

func init() {
	tailorCmd.Flags().StringVar(&tailorResume, "resume", config.DefaultResumePath, "Path to the canonical resume YAML")
	tailorCmd.Flags().StringVar(&tailorSkills, "skills", config.DefaultSkillsPath, "Path to the skills taxonomy YAML")
	tailorCmd.Flags().StringVar(&tailorJobTitle, "job-title", "", "Target job title (required)")
	tailorCmd.Flags().StringVar(&tailorJobPath, "job", "", "Path to a job description text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL of a job posting to fetch")
	tailorCmd.Flags().StringVar(&tailorOut, "out", "", "Output file for the tailored document (default: stdout)")
	_ = tailorCmd.MarkFlagRequired("job-title")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	if (tailorJobPath == "") == (tailorJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	canonical, err := config.Load(tailorResume, tailorSkills)
	if err != nil {
		return fmt.Errorf("failed to load canonical resume: %w", err)
	}

	jobDescription, err := loadJobDescription(cmd, tailorJobPath, tailorJobURL)
	if err != nil {
		return err
	}

	engine := tailoring.NewEngine()
	tailored, err := engine.TailorResume(cmd.Context(), canonical, tailorJobTitle, jobDescription)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	out, err := json.MarshalIndent(tailored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tailored document: %w", err)
	}

	if tailorOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(tailorOut, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tailorOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tailored resume written to %s\n", tailorOut)
	return nil
}

// loadJobDescription reads the job description from a file or fetches
// it from a posting URL.
func loadJobDescription(cmd *cobra.Command, path, url string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	posting, err := ingestion.FetchPosting(cmd.Context(), url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return posting.Text, nil
}
