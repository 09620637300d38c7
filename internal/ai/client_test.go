package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codetrail/gitreport/internal/config"
	"github.com/codetrail/gitreport/internal/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		Provider:     "openai",
		APIKey:       "sk-test",
		Model:        "gpt-4o-mini",
		BaseURL:      baseURL,
		SystemPrompt: "You are a reporter.",
		UserPrompt:   "Report on:\n{commit_log}\n{example}",
		Temperature:  0.7,
	}
}

func completionResponse(content string) string {
	return `{
		"choices": [{"message": {"role": "assistant", "content": "` + content + `"}}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
	}`
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	logger := testLogger()

	_, err := New(config.AIConfig{Provider: "openai", APIKey: "", Temperature: 0.7}, logger)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfiguration), "empty credential must fail before any network call")

	_, err = New(config.AIConfig{Provider: "gemini", APIKey: "k", Temperature: 0.7}, logger)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfiguration))

	_, err = New(config.AIConfig{Provider: "openai", APIKey: "k", Temperature: 2.5}, logger)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfiguration))
}

func TestNewSelectsVariant(t *testing.T) {
	logger := testLogger()

	for provider, platform := range map[string]string{
		"openai":   "OpenAI GPT",
		"deepseek": "DeepSeek Chat",
		"zhipu":    "Zhipu GLM",
	} {
		adapter, err := New(config.AIConfig{Provider: provider, APIKey: "k", Temperature: 0.7}, logger)
		require.NoError(t, err)
		assert.Equal(t, platform, adapter.PlatformName())
	}
}

func TestGenerateReportSuccess(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionResponse("Weekly report text"))
	}))
	defer server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	text, err := adapter.GenerateReport(context.Background(), "A,B")
	require.NoError(t, err)
	assert.Equal(t, "Weekly report text", text)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 2)
	user := messages[1].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.True(t, strings.Contains(user["content"].(string), "A,B"))

	usage := adapter.TokenUsage()
	assert.Equal(t, 12, usage.PromptTokens)
	assert.Equal(t, 7, usage.CompletionTokens)
	assert.Equal(t, 19, usage.TotalTokens)
}

func TestGenerateReportHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": {"message": "boom", "type": "server_error"}}`)
	}))
	defer server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	_, err = adapter.GenerateReport(context.Background(), "A,B")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRequest))
	assert.Contains(t, err.Error(), "500")

	// A failed call must leave the usage snapshot untouched.
	assert.True(t, adapter.TokenUsage().IsZero())
}

func TestGenerateReportMissingChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"usage": {"prompt_tokens": 1, "completion_tokens": 0, "total_tokens": 1}}`)
	}))
	defer server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	_, err = adapter.GenerateReport(context.Background(), "A,B")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRequest))
	assert.Contains(t, err.Error(), "malformed response")
	assert.True(t, adapter.TokenUsage().IsZero())
}

func TestGenerateReportNetworkError(t *testing.T) {
	// Point at a closed port.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	_, err = adapter.GenerateReport(context.Background(), "A,B")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRequest))
}

func TestTestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		// The connection test stays minimal: a tiny max_tokens budget.
		assert.EqualValues(t, 5, body["max_tokens"])
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionResponse("hello"))
	}))
	defer server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	ok, message := adapter.TestConnection(context.Background())
	assert.True(t, ok)
	assert.Contains(t, message, "OpenAI GPT")
}

func TestTestConnectionFailureNeverErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error": {"message": "bad key", "type": "invalid_request_error"}}`)
	}))
	defer server.Close()

	adapter, err := New(testConfig(server.URL+"/v1"), testLogger())
	require.NoError(t, err)

	ok, message := adapter.TestConnection(context.Background())
	assert.False(t, ok)
	assert.Contains(t, message, "connection failed")
	assert.Contains(t, message, "401")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey(""))
	assert.Equal(t, "****", maskAPIKey("abcd"))
	assert.Equal(t, "****6789", maskAPIKey("sk-123456789"))
}
