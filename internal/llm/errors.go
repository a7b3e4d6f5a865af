package llm

import "fmt"

// ConfigError indicates that no provider credential is configured.
// It is raised before any network call and surfaced verbatim so the
// HTTP layer can distinguish it from generic failures.
type ConfigError struct{}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no LLM provider API key set (%s or %s)", EnvGeminiAPIKey, EnvAnthropicAPIKey)
}

// ProviderError wraps a failure from the selected backend (network,
// auth, quota, malformed request). It is not retried automatically.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider call failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
