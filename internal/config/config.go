// Package config loads the canonical resume and skills documents from
// YAML files into the typed model.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Default document locations, relative to the working directory.
const (
	DefaultResumePath = "configs/resume.yaml"
	DefaultSkillsPath = "configs/skills.yaml"
)

// Load reads the resume document (profile + sections) and the skills
// taxonomy from two YAML files, assembles the canonical
// ResumeDocument, and schema-checks the result. Absence of either
// file is a load-time error.
func Load(resumePath, skillsPath string) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if err := decodeYAMLFile(resumePath, &doc); err != nil {
		return nil, fmt.Errorf("failed to load resume document %s: %w", resumePath, err)
	}

	var taxonomy types.Taxonomy
	if err := decodeYAMLFile(skillsPath, &taxonomy); err != nil {
		return nil, fmt.Errorf("failed to load skills document %s: %w", skillsPath, err)
	}
	doc.SkillsTaxonomy = taxonomy

	raw, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}
	if err := schemas.ValidateResumeDocument(raw); err != nil {
		return nil, err
	}

	return &doc, nil
}

// decodeYAMLFile decodes YAML through a generic value and JSON so the
// typed model's shape-directed content decoding is the single source
// of truth for both YAML files and API bodies.
func decodeYAMLFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	jsonBytes, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, out); err != nil {
		return fmt.Errorf("document does not match the resume model: %w", err)
	}
	return nil
}
