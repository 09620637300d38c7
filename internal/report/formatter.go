package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codetrail/gitreport/internal/models"
)

// Sentinel strings returned by FormatCommits when there is nothing to report.
// They are distinct so callers can tell "no history" from "history was all
// noise".
const (
	NoCommitsMessage = "no commit records found"
	AllNoiseMessage  = "no valid commit records after noise filtering"
)

// FormatCommits renders a grouped, deduplicated textual summary of the given
// commits, suitable as input for report generation. When filterNoise is true
// (the default behavior of callers), noise commits are removed before the
// statistics and detail sections are built.
func FormatCommits(commits []models.CommitRecord, filterNoise bool) string {
	if len(commits) == 0 {
		return NoCommitsMessage
	}

	if filterNoise {
		kept := commits[:0:0]
		for _, c := range commits {
			if !IsNoise(c.Message) {
				kept = append(kept, c)
			}
		}
		commits = kept
	}

	if len(commits) == 0 {
		return AllNoiseMessage
	}

	grouped := make(map[string][]models.CommitRecord)
	for _, c := range commits {
		category := Classify(c.Message)
		grouped[category] = append(grouped[category], c)
	}

	var lines []string
	lines = append(lines, "Commit Summary")
	lines = append(lines, fmt.Sprintf("Total: %d commits", len(commits)))

	// Records without a repository name still count toward the total but are
	// left out of the distinct-repository listing.
	repoSet := make(map[string]bool)
	for _, c := range commits {
		if c.RepoName != "" {
			repoSet[c.RepoName] = true
		}
	}
	if len(repoSet) > 0 {
		names := make([]string, 0, len(repoSet))
		for name := range repoSet {
			names = append(names, name)
		}
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("Repositories: %d (%s)", len(names), strings.Join(names, ", ")))
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("%s(%s): %d", DisplayName(category), category, len(grouped[category])))
	}

	lines = append(lines, "\nCommit Details")

	for _, category := range detailOrder {
		group, ok := grouped[category]
		if !ok {
			continue
		}

		lines = append(lines, fmt.Sprintf("\n## %s", DisplayName(category)))

		for _, c := range group {
			repoTag := ""
			if c.RepoName != "" {
				repoTag = fmt.Sprintf("[%s] ", c.RepoName)
			}
			lines = append(lines, fmt.Sprintf("[%s] %s%s: %s",
				c.Date.Format("2006-01-02"), repoTag, c.Author, stripPrefix(c.Message)))
		}
	}

	return strings.Join(lines, "\n")
}

// Statistics returns per-category commit counts using the same noise filter
// and classification as FormatCommits, without any rendering.
func Statistics(commits []models.CommitRecord) map[string]int {
	stats := make(map[string]int)
	for _, c := range commits {
		if IsNoise(c.Message) {
			continue
		}
		stats[Classify(c.Message)]++
	}
	return stats
}
