package ai

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Placeholder tokens replaced verbatim in the user-prompt template. This is
// literal substring replacement, not a templating language: every occurrence
// is replaced and there is no escaping.
const (
	CommitLogPlaceholder = "{commit_log}"
	ExamplePlaceholder   = "{example}"
)

// exampleLabel heads the block substituted for the example placeholder when
// example mode is active.
const exampleLabel = "[Example]"

// buildMessages assembles the chat message list for one report request:
// an optional system message followed by the substituted user message.
func buildMessages(systemPrompt, userPrompt, reportExample string, useExample bool, commitSummary string) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if trimmed := strings.TrimSpace(systemPrompt); trimmed != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: trimmed,
		})
	}

	content := strings.ReplaceAll(userPrompt, CommitLogPlaceholder, commitSummary)

	if useExample && strings.TrimSpace(reportExample) != "" {
		block := "\n\n" + exampleLabel + "\n" + strings.TrimSpace(reportExample) + "\n"
		content = strings.ReplaceAll(content, ExamplePlaceholder, block)
	} else {
		content = strings.ReplaceAll(content, ExamplePlaceholder, "")
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: strings.TrimSpace(content),
	})

	return messages
}
