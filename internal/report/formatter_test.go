package report

import (
	"strings"
	"testing"
	"time"

	"github.com/codetrail/gitreport/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commit(repo, author, message string, date time.Time) models.CommitRecord {
	return models.CommitRecord{
		Hash:     "0123456789abcdef0123456789abcdef01234567",
		Author:   author,
		Email:    author + "@example.com",
		Date:     date,
		Message:  message,
		RepoName: repo,
	}
}

func TestFormatCommitsEmpty(t *testing.T) {
	assert.Equal(t, NoCommitsMessage, FormatCommits(nil, true))
	assert.Equal(t, NoCommitsMessage, FormatCommits([]models.CommitRecord{}, true))
}

func TestFormatCommitsAllNoise(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commit("api", "alice", "Merge branch 'dev'", date),
		commit("api", "alice", "wip", date),
	}

	assert.Equal(t, AllNoiseMessage, FormatCommits(commits, true))

	// With filtering off the same input formats normally.
	out := FormatCommits(commits, false)
	assert.Contains(t, out, "Total: 2 commits")
}

func TestFormatCommitsHeaderAndGroups(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commit("api", "alice", "feat: add login", date),
		commit("web", "bob", "fix: broken redirect", date),
		commit("api", "alice", "Merge pull request #12", date),
		commit("", "carol", "docs: usage notes", date),
	}

	out := FormatCommits(commits, true)

	// The merge commit is noise: excluded from totals and details.
	assert.Contains(t, out, "Total: 3 commits")
	assert.NotContains(t, out, "Merge pull request")

	// Distinct repos are sorted; the blank repo name is not listed.
	assert.Contains(t, out, "Repositories: 2 (api, web)")

	// Summary lines use Display(key): count.
	assert.Contains(t, out, "Features(feat): 1")
	assert.Contains(t, out, "Fixes(fix): 1")
	assert.Contains(t, out, "Documentation(docs): 1")

	// Detail lines carry date, repo tag, author, and the stripped message.
	assert.Contains(t, out, "[2024-03-01] [api] alice: add login")
	assert.Contains(t, out, "[2024-03-01] [web] bob: broken redirect")
	// Blank repo name drops the bracketed tag but keeps the commit.
	assert.Contains(t, out, "[2024-03-01] carol: usage notes")
}

func TestFormatCommitsDetailOrder(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commit("api", "a", "test: cover edge cases", date),
		commit("api", "a", "feat: one", date),
		commit("api", "a", "perf: faster walk", date),
		commit("api", "a", "feat: two", date),
	}

	out := FormatCommits(commits, true)

	featIdx := strings.Index(out, "## Features")
	perfIdx := strings.Index(out, "## Performance")
	testIdx := strings.Index(out, "## Tests")
	require.True(t, featIdx >= 0 && perfIdx >= 0 && testIdx >= 0)

	// Fixed display order: feat before perf before test.
	assert.Less(t, featIdx, perfIdx)
	assert.Less(t, perfIdx, testIdx)

	// Within a category the input order is preserved.
	oneIdx := strings.Index(out, "a: one")
	twoIdx := strings.Index(out, "a: two")
	assert.Less(t, oneIdx, twoIdx)
}

func TestFormatCommitsFirstLineOnly(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commit("api", "alice", "feat: add login\n\nwith a longer body\nacross lines", date),
	}

	out := FormatCommits(commits, true)
	assert.Contains(t, out, "alice: add login")
	assert.NotContains(t, out, "longer body")
}

func TestStatistics(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commit("api", "a", "feat: one", date),
		commit("api", "a", "feat: two", date),
		commit("api", "a", "fix: three", date),
		commit("api", "a", "Merge branch 'x'", date),
	}

	stats := Statistics(commits)
	assert.Equal(t, map[string]int{CategoryFeat: 2, CategoryFix: 1}, stats)
}
