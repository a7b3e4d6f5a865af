package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeModel is the Claude model used for all tailoring calls.
const ClaudeModel = anthropic.ModelClaude3_7SonnetLatest

// claudeMaxTokens bounds the reply length; tailored sections and
// cover letters fit comfortably within it.
const claudeMaxTokens = 4096

// ClaudeProvider implements ContentProvider for Anthropic Claude.
type ClaudeProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeProvider creates a Claude-backed provider.
func NewClaudeProvider(apiKey string) *ClaudeProvider {
	return &ClaudeProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  ClaudeModel,
	}
}

// GenerateContent generates text for the prompt. The Messages API has
// no JSON response mode, so jsonMode is a prompt-level hint only; the
// prompts already carry the raw-JSON instruction.
func (p *ClaudeProvider) GenerateContent(ctx context.Context, prompt string, _ bool) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   claudeMaxTokens,
		Temperature: anthropic.Float(0.1),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
		}},
	})
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}

	if len(resp.Content) == 0 {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty response")}
	}
	var text string
	for _, block := range resp.Content {
		text += block.AsText().Text
	}
	if text == "" {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("no text content in response")}
	}
	return text, nil
}

// Name returns the provider identifier.
func (p *ClaudeProvider) Name() string { return "claude" }

// Close is a no-op; the Claude client holds no long-lived resources.
func (p *ClaudeProvider) Close() error { return nil }
