// Package llm provides the LLM provider abstraction and the two
// concrete backends (Gemini, Claude) selected by credential presence.
package llm

import (
	"context"
	"os"
)

// Environment variables carrying provider credentials. Gemini is the
// primary backend; Claude is used when only its key is configured.
const (
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// ContentProvider is the single capability the tailoring engine
// needs: generate text from a prompt, optionally hinting the backend
// toward machine-parseable JSON. jsonMode is best-effort; callers
// must not assume the reply is valid JSON even when it is set.
type ContentProvider interface {
	GenerateContent(ctx context.Context, prompt string, jsonMode bool) (string, error)
	// Name returns the provider identifier (e.g. "gemini", "claude").
	Name() string
	// Close releases any resources held by the provider.
	Close() error
}

// Factory resolves a ContentProvider at call time. Implementations
// must fail with *ConfigError before any network I/O when no
// credential is available.
type Factory func(ctx context.Context) (ContentProvider, error)

// FromEnv selects a backend from the environment: Gemini if its key
// is set, else Claude, else *ConfigError. Credentials are re-read on
// every call so key changes take effect without a restart.
func FromEnv(ctx context.Context) (ContentProvider, error) {
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		return NewGeminiProvider(ctx, key)
	}
	if key := os.Getenv(EnvAnthropicAPIKey); key != "" {
		return NewClaudeProvider(key), nil
	}
	return nil, &ConfigError{}
}
