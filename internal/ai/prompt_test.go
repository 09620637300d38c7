package ai

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessagesSystemPrompt(t *testing.T) {
	messages := buildMessages("  You are a reporter.  ", "{commit_log}", "", false, "summary")
	require.Len(t, messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "You are a reporter.", messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[1].Role)

	// Blank system prompt emits no system message.
	messages = buildMessages("   ", "{commit_log}", "", false, "summary")
	require.Len(t, messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[0].Role)
}

func TestBuildMessagesExampleDisabled(t *testing.T) {
	messages := buildMessages("", "Log:\n{commit_log}\n{example}", "", false, "A,B")
	require.Len(t, messages, 1)

	// The example placeholder is removed and the result trimmed, leaving no
	// stray token behind.
	assert.Equal(t, "Log:\nA,B", messages[0].Content)
	assert.NotContains(t, messages[0].Content, ExamplePlaceholder)
}

func TestBuildMessagesExampleEnabled(t *testing.T) {
	messages := buildMessages("", "Log:\n{commit_log}\n{example}", "  Foo  ", true, "A,B")
	require.Len(t, messages, 1)

	content := messages[0].Content
	assert.Contains(t, content, "A,B")
	assert.Contains(t, content, "[Example]\nFoo")
	assert.NotContains(t, content, ExamplePlaceholder)
	assert.NotContains(t, content, CommitLogPlaceholder)
}

func TestBuildMessagesExampleEnabledButEmpty(t *testing.T) {
	// Example mode on with a blank example behaves like example mode off.
	messages := buildMessages("", "Log:\n{commit_log}\n{example}", "   ", true, "A,B")
	require.Len(t, messages, 1)
	assert.Equal(t, "Log:\nA,B", messages[0].Content)
}

func TestBuildMessagesReplacesAllOccurrences(t *testing.T) {
	messages := buildMessages("", "{commit_log} and again {commit_log}", "", false, "X")
	require.Len(t, messages, 1)
	assert.Equal(t, "X and again X", messages[0].Content)
}
