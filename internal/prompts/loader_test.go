package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AllTailorKeys(t *testing.T) {
	keys := []string{
		"professional_summary",
		"experience_tailoring",
		"skills_optimization",
		"education_tailoring",
		"proof_of_skill_tailoring",
		"certifications_tailoring",
		"cover_letter",
	}

	for _, key := range keys {
		prompt, err := Get("tailor.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt, key)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("tailor.json", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "key")
	require.Error(t, err)
}

func TestFill_FirstOccurrenceOnly(t *testing.T) {
	out := Fill("[job_title] vs [job_title]", map[string]string{"[job_title]": "SRE"})
	assert.Equal(t, "SRE vs [job_title]", out)
}

func TestFill_MultipleTokens(t *testing.T) {
	out := Fill("apply for [position] at [company]", map[string]string{
		"[position]": "SRE",
		"[company]":  "Acme",
	})
	assert.Equal(t, "apply for SRE at Acme", out)
}

// Each substituted token must appear at most once per template, since
// Fill only replaces the first occurrence.
func TestTailorTemplates_TokensAppearOnce(t *testing.T) {
	tokens := map[string][]string{
		"professional_summary":     {"[canonical_summary]", "[job_title]", "[job_description]", "[skills]"},
		"experience_tailoring":     {"[position]", "[canonical_experience]", "[job_title]", "[job_description]", "[skills]"},
		"skills_optimization":      {"[job_title]", "[job_description]", "[skills]"},
		"education_tailoring":      {"[position]", "[canonical_education]", "[job_title]", "[job_description]"},
		"proof_of_skill_tailoring": {"[position]", "[canonical_proof_of_skill]", "[job_title]", "[job_description]"},
		"certifications_tailoring": {"[position]", "[canonical_certifications]", "[job_title]", "[job_description]"},
		"cover_letter":             {"[position]", "[optimized_summary]", "[optimized_experience]", "[job_title]", "[job_description]", "[skills]", "[my_name]"},
	}

	for key, expected := range tokens {
		template := MustGet("tailor.json", key)
		for _, token := range expected {
			assert.Equal(t, 1, strings.Count(template, token), "%s in %s", token, key)
		}
	}
}
