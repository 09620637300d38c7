package models

import (
	"time"
)

// RepoDescriptor is the result of discovering one git repository during a scan.
// AuthorName and AuthorEmail come from the repository's git identity
// configuration and may be empty when unset or unreadable.
type RepoDescriptor struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Depth       int    `json:"depth"`
	ParentPath  string `json:"parent_path"`
}

// CommitRecord represents one git commit, denormalized with the repository it
// came from so records from multiple repositories can be aggregated without
// losing provenance. Category is assigned by the classifier, not the extractor.
type CommitRecord struct {
	Hash     string    `json:"hash"`
	Author   string    `json:"author"`
	Email    string    `json:"email"`
	Date     time.Time `json:"date"`
	Message  string    `json:"message"`
	RepoName string    `json:"repo,omitempty"`
	RepoPath string    `json:"repo_path,omitempty"`
	Category string    `json:"category,omitempty"`
}

// ShortHash returns the first n characters of the commit hash.
func (c CommitRecord) ShortHash(n int) string {
	if n <= 0 || n > len(c.Hash) {
		return c.Hash
	}
	return c.Hash[:n]
}

// FormattedDate renders the commit date with the given layout.
func (c CommitRecord) FormattedDate(layout string) string {
	return c.Date.Format(layout)
}

// Author is a unique commit author identity within a repository.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenUsage holds the provider-reported token counts for one completion call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Total returns the total token count, falling back to prompt+completion when
// the provider omitted the total field.
func (u TokenUsage) Total() int {
	if u.TotalTokens > 0 {
		return u.TotalTokens
	}
	return u.PromptTokens + u.CompletionTokens
}

// IsZero reports whether no usage has been recorded.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}
