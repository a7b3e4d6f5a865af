// Package tailoring rewrites a canonical resume document for a target
// job by fanning out prompts to an LLM provider and merging the
// replies into a fresh copy of the document.
package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Section titles the orchestrator rewrites. Any of them may be absent
// from the canonical document; absent sections are left absent.
const (
	SectionExperience     = "Experience"
	SectionEducation      = "Education"
	SectionProofOfSkill   = "Proof of Skill"
	SectionCertifications = "Certifications"
	SectionSkills         = "Skills"
)

// promptFile is the embedded template file used by the engine.
const promptFile = "tailor.json"

// summaryLabel is the label line the summary prompt asks the model to
// emit; it is stripped from the reply.
const summaryLabel = "Professional Summary:\n"

// jsonArraySuffix is appended to prompts whose templates do not
// already carry the raw-JSON instruction.
const jsonArraySuffix = "\n\nIMPORTANT: Return ONLY a valid JSON array of the %s based on the input schema. Do not include markdown formatting like ```json."

// Engine orchestrates tailoring and cover-letter generation. The
// provider factory is invoked once per operation, so credential
// changes take effect without a restart.
type Engine struct {
	Providers llm.Factory
}

// NewEngine returns an engine backed by environment-selected
// providers.
func NewEngine() *Engine {
	return &Engine{Providers: llm.FromEnv}
}

// TailorResume produces a new document rewritten for the target job.
// The canonical input is never mutated. Provider construction and
// network failures abort the whole operation; malformed replies are
// recovered locally by falling back to the canonical content.
func (e *Engine) TailorResume(ctx context.Context, canonical *types.ResumeDocument, jobTitle, jobDescription string) (*types.ResumeDocument, error) {
	provider, err := e.Providers(ctx)
	if err != nil {
		return nil, err
	}
	defer provider.Close()

	skillsJSON := skillsPromptJSON(canonical)
	experienceItems := canonical.SectionItems(SectionExperience)
	educationItems := canonical.SectionItems(SectionEducation)
	proofItems := canonical.SectionItems(SectionProofOfSkill)
	certificationItems := canonical.SectionItems(SectionCertifications)

	summaryPrompt := prompts.Fill(prompts.MustGet(promptFile, "professional_summary"), map[string]string{
		"[canonical_summary]": canonical.Profile.About,
		"[job_title]":         jobTitle,
		"[job_description]":   jobDescription,
		"[skills]":            skillsJSON,
	})
	experiencePrompt := prompts.Fill(prompts.MustGet(promptFile, "experience_tailoring"), map[string]string{
		"[position]":             jobTitle,
		"[canonical_experience]": itemsJSON(experienceItems),
		"[job_title]":            jobTitle,
		"[job_description]":      jobDescription,
		"[skills]":               skillsJSON,
	}) + fmt.Sprintf(jsonArraySuffix, "tailored experience items")
	skillsPrompt := prompts.Fill(prompts.MustGet(promptFile, "skills_optimization"), map[string]string{
		"[job_title]":       jobTitle,
		"[job_description]": jobDescription,
		"[skills]":          skillsJSON,
	}) + fmt.Sprintf(jsonArraySuffix, "optimized skill items")
	educationPrompt := prompts.Fill(prompts.MustGet(promptFile, "education_tailoring"), map[string]string{
		"[position]":            jobTitle,
		"[canonical_education]": itemsJSON(educationItems),
		"[job_title]":           jobTitle,
		"[job_description]":     jobDescription,
	})
	proofPrompt := prompts.Fill(prompts.MustGet(promptFile, "proof_of_skill_tailoring"), map[string]string{
		"[position]":                 jobTitle,
		"[canonical_proof_of_skill]": itemsJSON(proofItems),
		"[job_title]":                jobTitle,
		"[job_description]":          jobDescription,
	})
	certificationsPrompt := prompts.Fill(prompts.MustGet(promptFile, "certifications_tailoring"), map[string]string{
		"[position]":                 jobTitle,
		"[canonical_certifications]": itemsJSON(certificationItems),
		"[job_title]":                jobTitle,
		"[job_description]":          jobDescription,
	})

	calls := []struct {
		prompt   string
		jsonMode bool
	}{
		{summaryPrompt, false},
		{experiencePrompt, true},
		{skillsPrompt, true},
		{educationPrompt, true},
		{proofPrompt, true},
		{certificationsPrompt, true},
	}

	// Fan out all six calls; any failure aborts the whole operation.
	replies := make([]string, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			text, err := provider.GenerateContent(gctx, call.prompt, call.jsonMode)
			if err != nil {
				return err
			}
			replies[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(strings.Replace(replies[0], summaryLabel, "", 1))
	if summary == "" {
		summary = canonical.Profile.About
	}

	tailored := canonical.Clone()
	tailored.Profile.About = summary
	tailored.Profile.Title = jobTitle

	setSectionItems(tailored, SectionExperience, ExtractItemArray(replies[1], experienceItems))
	setSectionItems(tailored, SectionEducation, ExtractItemArray(replies[3], educationItems))
	setSectionItems(tailored, SectionProofOfSkill, ExtractItemArray(replies[4], proofItems))
	setSectionItems(tailored, SectionCertifications, ExtractItemArray(replies[5], certificationItems))

	tailored.SkillsTaxonomy.Sections = []types.Section{{
		Title:   SectionSkills,
		Layout:  types.LayoutListPane,
		Content: types.ItemsContent(ExtractItemArray(replies[2], skillsFallback(canonical))),
	}}

	return tailored, nil
}

// setSectionItems rewrites the content of the named section in place.
// No section is created when the title is absent.
func setSectionItems(doc *types.ResumeDocument, title string, items []types.Item) {
	if sec := doc.Section(title); sec != nil {
		sec.Content = types.ItemsContent(items)
	}
}

// skillsPromptJSON serializes the flattened skills list for prompt
// substitution: the first taxonomy sub-section's items when present,
// else the raw top-level sections.
func skillsPromptJSON(doc *types.ResumeDocument) string {
	sections := doc.SkillsTaxonomy.Sections
	if len(sections) > 0 && sections[0].Content.Items != nil {
		return itemsJSON(sections[0].Content.Items)
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// skillsFallback is the parse fallback for the skills reply: the
// first taxonomy sub-section's items, else an empty list.
func skillsFallback(doc *types.ResumeDocument) []types.Item {
	sections := doc.SkillsTaxonomy.Sections
	if len(sections) > 0 && sections[0].Content.Items != nil {
		return sections[0].Content.Items
	}
	return []types.Item{}
}

func itemsJSON(items []types.Item) string {
	if items == nil {
		items = []types.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
