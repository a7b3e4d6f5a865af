package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestExtractItemArray(t *testing.T) {
	fallback := []types.Item{{Title: "fallback"}}

	tests := []struct {
		name     string
		input    string
		expected []types.Item
	}{
		{
			name:     "array passthrough",
			input:    `[{"title":"a"}]`,
			expected: []types.Item{{Title: "a"}},
		},
		{
			name:     "empty array passthrough",
			input:    `[]`,
			expected: []types.Item{},
		},
		{
			name:     "wrapped object unwrap",
			input:    `{"items":[{"title":"b"}]}`,
			expected: []types.Item{{Title: "b"}},
		},
		{
			name:     "wrapped object skips non-array values",
			input:    `{"count":2,"results":[{"title":"c"}]}`,
			expected: []types.Item{{Title: "c"}},
		},
		{
			name:     "json fence stripped",
			input:    "```json\n[{\"title\":\"a\"}]\n```",
			expected: []types.Item{{Title: "a"}},
		},
		{
			name:     "generic fence stripped",
			input:    "```\n[{\"title\":\"a\"}]\n```",
			expected: []types.Item{{Title: "a"}},
		},
		{
			name:     "bare strings become title-only items",
			input:    `["Skill A","Skill B"]`,
			expected: []types.Item{{Title: "Skill A"}, {Title: "Skill B"}},
		},
		{
			name:     "prose falls back",
			input:    "Here are the tailored items you asked for.",
			expected: fallback,
		},
		{
			name:     "empty reply falls back",
			input:    "",
			expected: fallback,
		},
		{
			name:     "truncated json falls back",
			input:    `[{"title":"a"`,
			expected: fallback,
		},
		{
			name:     "object without arrays falls back",
			input:    `{"message":"done"}`,
			expected: fallback,
		},
		{
			name:     "scalar falls back",
			input:    `42`,
			expected: fallback,
		},
		{
			name:     "malformed element falls back whole",
			input:    `[{"title":"a"},42]`,
			expected: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractItemArray(tt.input, fallback)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractItemArray_FallbackReturnedUnchanged(t *testing.T) {
	fallback := []types.Item{{Title: "keep", Description: "me"}}
	got := ExtractItemArray("not json at all", fallback)
	require.Len(t, got, 1)
	assert.Equal(t, fallback[0], got[0])
}

func TestExtractItemArray_FenceEquivalence(t *testing.T) {
	plain := ExtractItemArray(`[{"title":"x","caption":"y"}]`, nil)
	fenced := ExtractItemArray("```json\n[{\"title\":\"x\",\"caption\":\"y\"}]\n```", nil)
	assert.Equal(t, plain, fenced)
}
