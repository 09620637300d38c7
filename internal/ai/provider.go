package ai

import (
	"context"

	"github.com/codetrail/gitreport/internal/config"
	"github.com/codetrail/gitreport/internal/errors"
	"github.com/codetrail/gitreport/internal/models"
	"github.com/sirupsen/logrus"
)

// Provider identifies a chat-completion vendor.
type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderDeepSeek Provider = "deepseek"
	ProviderZhipu    Provider = "zhipu"
)

// Adapter is the uniform contract over all chat-completion providers. One
// adapter instance is not safe for concurrent calls; callers needing parallel
// report generation must create separate instances.
type Adapter interface {
	// GenerateReport sends the commit summary through the configured prompt
	// template and returns the generated report text. Exactly one request is
	// attempted; failures surface as a provider-tagged request error and are
	// never retried here.
	GenerateReport(ctx context.Context, commitSummary string) (string, error)

	// TestConnection issues a minimal low-token request. It never returns an
	// error: failures are reported through the boolean and message.
	TestConnection(ctx context.Context) (bool, string)

	// TokenUsage returns the usage snapshot of the last successful call, or
	// the zero value when no call has succeeded yet.
	TokenUsage() models.TokenUsage

	// PlatformName returns the human-readable provider name.
	PlatformName() string
}

// New selects and constructs the adapter variant for the provider id in the
// configuration. The provider set is closed: adding a provider means adding a
// variant and a switch arm here. Configuration violations (unknown provider,
// empty credential, temperature out of range) are rejected before any network
// activity.
func New(cfg config.AIConfig, logger *logrus.Logger) (Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch Provider(cfg.Provider) {
	case ProviderOpenAI:
		return newOpenAI(cfg, logger), nil
	case ProviderDeepSeek:
		return newDeepSeek(cfg, logger), nil
	case ProviderZhipu:
		return newZhipu(cfg, logger), nil
	default:
		// Unreachable while Validate and the enumeration agree.
		return nil, errors.ConfigurationErrorf("unsupported AI provider: %q", cfg.Provider)
	}
}
