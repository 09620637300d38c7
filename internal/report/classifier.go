package report

import (
	"regexp"
	"strings"
)

// Category keys follow the conventional-commits type vocabulary, plus "other"
// as the catch-all.
const (
	CategoryFeat     = "feat"
	CategoryFix      = "fix"
	CategoryRefactor = "refactor"
	CategoryDocs     = "docs"
	CategoryTest     = "test"
	CategoryChore    = "chore"
	CategoryStyle    = "style"
	CategoryPerf     = "perf"
	CategoryOther    = "other"
)

// categoryNames maps category keys to their display names.
var categoryNames = map[string]string{
	CategoryFeat:     "Features",
	CategoryFix:      "Fixes",
	CategoryRefactor: "Refactoring",
	CategoryDocs:     "Documentation",
	CategoryTest:     "Tests",
	CategoryChore:    "Chores",
	CategoryStyle:    "Style",
	CategoryPerf:     "Performance",
	CategoryOther:    "Other",
}

// detailOrder is the fixed order categories appear in the formatted detail
// section. Categories absent from the data are skipped.
var detailOrder = []string{
	CategoryFeat, CategoryFix, CategoryRefactor, CategoryDocs,
	CategoryPerf, CategoryTest, CategoryOther,
}

// keywordFallback holds the substring keyword sets tried, in order, when a
// message has no recognizable conventional-commits prefix. The precedence is
// kept exactly as-is for compatibility: a message matching several sets gets
// the first category that matches.
var keywordFallback = []struct {
	category string
	keywords []string
}{
	{CategoryFeat, []string{"feat", "feature", "新增", "添加"}},
	{CategoryFix, []string{"fix", "bug", "修复", "修正"}},
	{CategoryRefactor, []string{"refactor", "重构"}},
	{CategoryDocs, []string{"docs", "doc", "文档"}},
	{CategoryTest, []string{"test", "测试"}},
	{CategoryPerf, []string{"perf", "performance", "性能"}},
}

// noiseKeywords is the denylist of low-information commit phrases. Matching is
// plain substring with no word-boundary awareness, kept as-is for
// compatibility ("wip" matches inside "swipe").
var noiseKeywords = []string{
	"merge", "sync", "update readme", "update version",
	"bump version", "initial commit", "wip",
}

// conventionalPrefix matches "type(scope)?: description" at the start of a
// commit message.
var conventionalPrefix = regexp.MustCompile(`^(\w+)(\(.+?\))?:\s*`)

// DisplayName returns the display name for a category key, falling back to
// the "other" display name for unknown keys.
func DisplayName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

// Classify assigns a category to a commit message. It is a pure function: a
// conventional-commits prefix wins when its type is in the taxonomy,
// otherwise the keyword fallback applies in fixed priority order, and
// anything left is "other".
func Classify(message string) string {
	if m := conventionalPrefix.FindStringSubmatch(message); m != nil {
		commitType := strings.ToLower(m[1])
		if _, ok := categoryNames[commitType]; ok {
			return commitType
		}
	}

	lower := strings.ToLower(strings.TrimSpace(message))
	for _, set := range keywordFallback {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.category
			}
		}
	}

	return CategoryOther
}

// IsNoise reports whether a commit message matches the noise denylist. Noise
// commits are excluded from summaries and statistics before classification.
func IsNoise(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, kw := range noiseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// stripPrefix removes a leading conventional-commits type prefix from a
// message and truncates it to its first line.
func stripPrefix(message string) string {
	clean := conventionalPrefix.ReplaceAllString(message, "")
	if i := strings.IndexByte(clean, '\n'); i >= 0 {
		clean = clean[:i]
	}
	return clean
}
