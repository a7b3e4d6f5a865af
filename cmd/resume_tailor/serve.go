package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/server"
)

var (
	servePort   int
	serveResume string
	serveSkills string
	serveStatic string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the tailoring and cover-letter endpoints, plus the canonical resume document.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveResume, "resume", config.DefaultResumePath, "Path to the canonical resume YAML")
	serveCmd.Flags().StringVar(&serveSkills, "skills", config.DefaultSkillsPath, "Path to the skills taxonomy YAML")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "Directory of static UI assets to serve at /")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	resume, err := config.Load(serveResume, serveSkills)
	if err != nil {
		return fmt.Errorf("failed to load canonical resume: %w", err)
	}

	srv := server.New(server.Config{
		Port:      servePort,
		Resume:    resume,
		StaticDir: serveStatic,
	})

	return srv.Start()
}
