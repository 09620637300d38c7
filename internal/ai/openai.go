package ai

import (
	"github.com/codetrail/gitreport/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	openAIBaseURL      = "https://api.openai.com/v1"
	openAIDefaultModel = "gpt-4o-mini"
)

// newOpenAI builds the adapter variant for the OpenAI platform, including
// OpenAI-compatible gateways reached through a base URL override.
func newOpenAI(cfg config.AIConfig, logger *logrus.Logger) Adapter {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = openAIBaseURL
	}
	return newChatAdapter(ProviderOpenAI, "OpenAI GPT", cfg, logger)
}
