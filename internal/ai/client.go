package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/codetrail/gitreport/internal/config"
	"github.com/codetrail/gitreport/internal/errors"
	"github.com/codetrail/gitreport/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Client-side timeout budgets. Generation calls get the long budget, the
// connection test the short one. There is no retry on top of either.
const (
	generateTimeout = 60 * time.Second
	testTimeout     = 10 * time.Second
)

// chatAdapter implements Adapter for every provider speaking the OpenAI
// chat-completions wire contract; the provider variants differ only in
// platform name, default model, and base URL. lastUsage is a per-instance
// snapshot mutated after each successful call, which is why one instance
// must not be shared between concurrent calls.
type chatAdapter struct {
	provider     Provider
	platformName string
	cfg          config.AIConfig
	client       *openai.Client
	logger       *logrus.Logger
	lastUsage    models.TokenUsage
}

func newChatAdapter(provider Provider, platformName string, cfg config.AIConfig, logger *logrus.Logger) *chatAdapter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &chatAdapter{
		provider:     provider,
		platformName: platformName,
		cfg:          cfg,
		client:       openai.NewClientWithConfig(clientCfg),
		logger:       logger,
	}
}

func (a *chatAdapter) PlatformName() string {
	return a.platformName
}

func (a *chatAdapter) GenerateReport(ctx context.Context, commitSummary string) (string, error) {
	if a.cfg.APIKey == "" {
		return "", errors.ConfigurationErrorf("API key for provider %q is not configured", a.provider)
	}

	messages := buildMessages(a.cfg.SystemPrompt, a.cfg.UserPrompt, a.cfg.ReportExample, a.cfg.UseExample, commitSummary)

	a.logger.WithFields(logrus.Fields{
		"provider":     a.provider,
		"model":        a.cfg.Model,
		"input_length": len(commitSummary),
		"api_key":      maskAPIKey(a.cfg.APIKey),
	}).Info("generating report")

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Messages:    messages,
		Temperature: float32(a.cfg.Temperature),
	})
	if err != nil {
		return "", a.requestError(err, time.Since(start))
	}

	if len(resp.Choices) == 0 {
		err := errors.RequestErrorf(string(a.provider), "malformed response: no completion choices returned")
		a.logger.WithField("provider", a.provider).WithError(err).Error("report generation failed")
		return "", err
	}

	a.lastUsage = models.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}

	a.logger.WithFields(logrus.Fields{
		"provider":          a.provider,
		"duration":          time.Since(start).Round(time.Millisecond).String(),
		"prompt_tokens":     a.lastUsage.PromptTokens,
		"completion_tokens": a.lastUsage.CompletionTokens,
		"total_tokens":      a.lastUsage.TotalTokens,
	}).Info("report generated")

	return resp.Choices[0].Message.Content, nil
}

func (a *chatAdapter) TestConnection(ctx context.Context) (ok bool, message string) {
	a.logger.WithField("provider", a.provider).Info("testing API connection")

	ctx, cancel := context.WithTimeout(ctx, testTimeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
		MaxTokens: 5,
	})
	if err != nil {
		reqErr := a.requestError(err, testTimeout)
		return false, fmt.Sprintf("connection failed: %v", reqErr)
	}
	if len(resp.Choices) == 0 {
		return false, fmt.Sprintf("connection failed: [%s] malformed response: no completion choices returned", a.provider)
	}

	a.logger.WithField("provider", a.provider).Info("API connection test succeeded")
	return true, fmt.Sprintf("connection succeeded, platform: %s", a.platformName)
}

func (a *chatAdapter) TokenUsage() models.TokenUsage {
	return a.lastUsage
}

// requestError normalizes transport, HTTP-status, and timeout failures into a
// provider-tagged request error whose message is enough to diagnose the cause
// without log access. The last-usage snapshot is left untouched.
func (a *chatAdapter) requestError(err error, elapsed time.Duration) error {
	provider := string(a.provider)

	var mapped *errors.Error
	var apiErr *openai.APIError
	var reqErr *openai.RequestError

	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		mapped = errors.RequestErrorf(provider, "request timed out after %s", elapsed.Round(time.Second))
	case stderrors.As(err, &apiErr):
		mapped = errors.RequestErrorf(provider, "API request failed with status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	case stderrors.As(err, &reqErr):
		mapped = errors.RequestErrorf(provider, "API request failed with status %d: %v", reqErr.HTTPStatusCode, reqErr.Err)
	default:
		mapped = errors.WrapRequestError(err, provider, "network error")
	}

	a.logger.WithField("provider", a.provider).WithError(mapped).Error("AI request failed")
	return mapped
}

// maskAPIKey hides all but the last four characters of a credential for
// logging.
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 4 {
		return "****"
	}
	return "****" + apiKey[len(apiKey)-4:]
}
