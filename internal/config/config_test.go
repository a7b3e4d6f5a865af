package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

const resumeYAML = `profile:
  name: Jordan Example
  title: Software Engineer
  email: jordan@example.com
  about: Canonical summary
sections:
  - title: About
    layout: text
    content: Canonical summary text.
  - title: Experience
    layout: list
    content:
      - title: Acme Corp
        sub_title: Software Engineer
        caption: 2020 - Present
        description: Built things.
`

const skillsYAML = `sections:
  - title: Skills
    layout: list-pane
    content:
      - title: Go
        set: Languages
      - title: PostgreSQL
        set: Databases
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.yaml", resumeYAML)
	skillsPath := writeFile(t, dir, "skills.yaml", skillsYAML)

	doc, err := Load(resumePath, skillsPath)
	require.NoError(t, err)

	assert.Equal(t, "Jordan Example", doc.Profile.Name)
	assert.Equal(t, types.EmailList{"jordan@example.com"}, doc.Profile.Emails)

	about := doc.Section("About")
	require.NotNil(t, about)
	assert.Equal(t, "Canonical summary text.", about.Content.Text)

	experience := doc.SectionItems("Experience")
	require.Len(t, experience, 1)
	assert.Equal(t, "Acme Corp", experience[0].Title)
	assert.Equal(t, "Software Engineer", experience[0].SubTitle)

	require.Len(t, doc.SkillsTaxonomy.Sections, 1)
	skills := doc.SkillsTaxonomy.Sections[0].Content.Items
	require.Len(t, skills, 2)
	assert.Equal(t, "Languages", skills[0].Set)
}

func TestLoad_MissingResumeFile(t *testing.T) {
	dir := t.TempDir()
	skillsPath := writeFile(t, dir, "skills.yaml", skillsYAML)

	_, err := Load(filepath.Join(dir, "nope.yaml"), skillsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resume document")
}

func TestLoad_MissingSkillsFile(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.yaml", resumeYAML)

	_, err := Load(resumePath, filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load skills document")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.yaml", "profile: [unclosed")
	skillsPath := writeFile(t, dir, "skills.yaml", skillsYAML)

	_, err := Load(resumePath, skillsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// Missing profile name fails the schema after assembly.
	resumePath := writeFile(t, dir, "resume.yaml", "profile:\n  about: no name\nsections: []\n")
	skillsPath := writeFile(t, dir, "skills.yaml", skillsYAML)

	_, err := Load(resumePath, skillsPath)
	require.Error(t, err)

	var verr *schemas.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_ShippedDefaults(t *testing.T) {
	doc, err := Load(filepath.Join("..", "..", DefaultResumePath), filepath.Join("..", "..", DefaultSkillsPath))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Profile.Name)
	assert.NotEmpty(t, doc.Sections)
	assert.NotEmpty(t, doc.SkillsTaxonomy.Sections)
}
