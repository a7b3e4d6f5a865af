package tailoring

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// CoverLetter generates a cover letter from an already-tailored
// document. The reply is returned raw: untrimmed and unparsed. There
// is no fallback; provider failures propagate.
func (e *Engine) CoverLetter(ctx context.Context, tailored *types.ResumeDocument, jobTitle, jobDescription string) (string, error) {
	provider, err := e.Providers(ctx)
	if err != nil {
		return "", err
	}
	defer provider.Close()

	skillsJSON, err := json.Marshal(tailored.SkillsTaxonomy.Sections)
	if err != nil {
		skillsJSON = []byte("[]")
	}

	prompt := prompts.Fill(prompts.MustGet(promptFile, "cover_letter"), map[string]string{
		"[position]":             jobTitle,
		"[optimized_summary]":    tailored.Profile.About,
		"[optimized_experience]": itemsJSON(tailored.SectionItems(SectionExperience)),
		"[job_title]":            jobTitle,
		"[job_description]":      jobDescription,
		"[skills]":               string(skillsJSON),
		"[my_name]":              tailored.Profile.Name,
	})

	return provider.GenerateContent(ctx, prompt, false)
}
