package ai

import (
	"github.com/codetrail/gitreport/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	zhipuBaseURL      = "https://open.bigmodel.cn/api/paas/v4"
	zhipuDefaultModel = "glm-4-flash"
)

// newZhipu builds the adapter variant for the Zhipu GLM platform, which
// exposes an OpenAI-compatible chat-completions endpoint.
func newZhipu(cfg config.AIConfig, logger *logrus.Logger) Adapter {
	if cfg.Model == "" {
		cfg.Model = zhipuDefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = zhipuBaseURL
	}
	return newChatAdapter(ProviderZhipu, "Zhipu GLM", cfg, logger)
}
