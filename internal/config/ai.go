package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/codetrail/gitreport/internal/errors"
)

// SupportedProviders is the closed set of chat-completion providers the
// adapter layer implements.
var SupportedProviders = []string{"openai", "deepseek", "zhipu"}

// providerEnvKeys maps each provider to the environment variable that may
// carry its API key.
var providerEnvKeys = map[string]string{
	"openai":   "OPENAI_API_KEY",
	"deepseek": "DEEPSEEK_API_KEY",
	"zhipu":    "ZHIPU_API_KEY",
}

// AIConfig is the validated per-provider configuration the adapter layer is
// constructed from. Invalid values are rejected here, at construction, not at
// call time.
type AIConfig struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	SystemPrompt  string
	UserPrompt    string
	ReportExample string
	UseExample    bool
	Temperature   float64
}

// Validate enforces the construction-time invariants: a supported provider, a
// non-empty credential, and a temperature within [0.0, 2.0].
func (c AIConfig) Validate() error {
	if !IsSupportedProvider(c.Provider) {
		return errors.ConfigurationErrorf("unsupported AI provider: %q (supported: %s)",
			c.Provider, strings.Join(SupportedProviders, ", "))
	}
	if c.APIKey == "" {
		return errors.ConfigurationErrorf("API key for provider %q is not configured", c.Provider)
	}
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return errors.ConfigurationErrorf("temperature %.2f out of range [0.0, 2.0]", c.Temperature)
	}
	return nil
}

// IsSupportedProvider reports whether id belongs to the provider enumeration.
func IsSupportedProvider(id string) bool {
	for _, p := range SupportedProviders {
		if p == id {
			return true
		}
	}
	return false
}

// AIFromStore assembles a validated AIConfig for the currently selected
// provider. The credential is resolved in order: provider environment
// variable, config file, OS keychain.
func AIFromStore(s *Store, keys *KeyringManager) (AIConfig, error) {
	provider := s.GetString("ai.provider")
	if !IsSupportedProvider(provider) {
		return AIConfig{}, errors.ConfigurationErrorf("unsupported AI provider: %q (supported: %s)",
			provider, strings.Join(SupportedProviders, ", "))
	}

	prefix := fmt.Sprintf("ai.configs.%s.", provider)

	apiKey := os.Getenv(providerEnvKeys[provider])
	if apiKey == "" {
		apiKey = s.GetString(prefix + "api_key")
	}
	if apiKey == "" && keys != nil {
		apiKey, _ = keys.APIKey(provider)
	}

	cfg := AIConfig{
		Provider:      provider,
		APIKey:        apiKey,
		Model:         s.GetString(prefix + "model"),
		BaseURL:       s.GetString(prefix + "base_url"),
		SystemPrompt:  s.GetString("ai.system_prompt"),
		UserPrompt:    s.GetString("ai.user_prompt"),
		ReportExample: s.GetString("ai.report_example"),
		UseExample:    s.GetBool("ai.use_example"),
		Temperature:   s.GetFloat64("ai.temperature"),
	}

	if err := cfg.Validate(); err != nil {
		return AIConfig{}, err
	}
	return cfg, nil
}
