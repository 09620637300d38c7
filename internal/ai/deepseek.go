package ai

import (
	"github.com/codetrail/gitreport/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	deepSeekBaseURL      = "https://api.deepseek.com"
	deepSeekDefaultModel = "deepseek-chat"
)

// newDeepSeek builds the adapter variant for the DeepSeek platform, which
// exposes an OpenAI-compatible chat-completions endpoint.
func newDeepSeek(cfg config.AIConfig, logger *logrus.Logger) Adapter {
	if cfg.Model == "" {
		cfg.Model = deepSeekDefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = deepSeekBaseURL
	}
	return newChatAdapter(ProviderDeepSeek, "DeepSeek Chat", cfg, logger)
}
