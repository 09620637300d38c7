package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/codetrail/gitreport/internal/errors"
	"github.com/codetrail/gitreport/internal/models"
	"github.com/sirupsen/logrus"
)

// Field and record separators used in the git log pretty format. Commit
// messages can contain any printable text, so the parser relies on ASCII
// control characters that git will never emit inside a field.
const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"

	logFormat = "%x1e%H%x1f%an%x1f%ae%x1f%cI%x1f%B"
)

// CommitFilter narrows the commits returned by Extractor.Commits. All fields
// are optional and combine with logical AND. Date bounds are inclusive.
type CommitFilter struct {
	AuthorName  string
	AuthorEmail string
	Since       time.Time
	Until       time.Time
}

// Extractor reads commit history from a single local git repository. All
// operations are read-only.
type Extractor struct {
	repoPath string
	repoName string
	logger   *logrus.Logger
}

// NewExtractor validates that path is an existing directory that git can open
// as a repository and returns an Extractor for it. The display name defaults
// to the leaf directory name. Fails with an InvalidRepositoryError otherwise.
func NewExtractor(path, name string, logger *logrus.Logger) (*Extractor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.InvalidRepositoryErrorf("repository path does not exist: %s", path)
	}
	if !info.IsDir() {
		return nil, errors.InvalidRepositoryErrorf("repository path is not a directory: %s", path)
	}

	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	if err := cmd.Run(); err != nil {
		return nil, errors.InvalidRepositoryError(err, fmt.Sprintf("not a valid git repository: %s", path))
	}

	if name == "" {
		name = filepath.Base(path)
	}

	return &Extractor{repoPath: path, repoName: name, logger: logger}, nil
}

// Path returns the repository path the extractor was constructed with.
func (e *Extractor) Path() string { return e.repoPath }

// Name returns the repository display name.
func (e *Extractor) Name() string { return e.repoName }

// Commits walks the repository history and returns records matching the
// filter, newest first. Each record is stamped with the extractor's repository
// name and path. An empty repository yields an empty slice, not an error; a
// genuine git failure surfaces as a GitOperationError.
func (e *Extractor) Commits(ctx context.Context, filter CommitFilter) ([]models.CommitRecord, error) {
	if e.isEmpty(ctx) {
		e.logger.WithField("repo", e.repoName).Debug("repository has no commits")
		return nil, nil
	}

	args := []string{"log", "--date=iso-strict", "--pretty=format:" + logFormat}
	if !filter.Since.IsZero() {
		args = append(args, fmt.Sprintf("--since=%s", filter.Since.Format(time.RFC3339)))
	}
	if !filter.Until.IsZero() {
		args = append(args, fmt.Sprintf("--until=%s", filter.Until.Format(time.RFC3339)))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.repoPath
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, errors.GitOperationErrorf(err, "git log failed for %s: %s", e.repoPath, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, errors.GitOperationErrorf(err, "git log failed for %s", e.repoPath)
	}

	commits := e.parseLog(output)

	var result []models.CommitRecord
	for _, c := range commits {
		if filter.AuthorName != "" && c.Author != filter.AuthorName {
			continue
		}
		if filter.AuthorEmail != "" && c.Email != filter.AuthorEmail {
			continue
		}
		// git --since/--until is approximate at the boundary; re-check so
		// the bounds stay strictly inclusive.
		if !filter.Since.IsZero() && c.Date.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && c.Date.After(filter.Until) {
			continue
		}
		result = append(result, c)
	}

	e.logger.WithFields(logrus.Fields{
		"repo":     e.repoName,
		"total":    len(commits),
		"filtered": len(result),
	}).Debug("extracted commits")

	return result, nil
}

// Authors returns the sorted unique author identities across the whole
// history. On any failure it logs a warning and returns an empty slice.
func (e *Extractor) Authors(ctx context.Context) []models.Author {
	if e.isEmpty(ctx) {
		return nil
	}

	cmd := exec.CommandContext(ctx, "git", "log", "--pretty=format:%an"+fieldSep+"%ae")
	cmd.Dir = e.repoPath
	output, err := cmd.Output()
	if err != nil {
		e.logger.WithField("repo", e.repoName).WithError(err).Warn("failed to list authors")
		return nil
	}

	seen := make(map[models.Author]bool)
	var authors []models.Author
	for _, line := range strings.Split(string(output), "\n") {
		parts := strings.SplitN(line, fieldSep, 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		a := models.Author{Name: parts[0], Email: parts[1]}
		if !seen[a] {
			seen[a] = true
			authors = append(authors, a)
		}
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Name != authors[j].Name {
			return authors[i].Name < authors[j].Name
		}
		return authors[i].Email < authors[j].Email
	})

	return authors
}

// isEmpty reports whether the repository has no commits yet.
func (e *Extractor) isEmpty(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--verify", "HEAD")
	cmd.Dir = e.repoPath
	return cmd.Run() != nil
}

// parseLog splits git log output produced with logFormat into commit records.
// Malformed records are skipped with a debug log rather than failing the walk.
func (e *Extractor) parseLog(output []byte) []models.CommitRecord {
	var commits []models.CommitRecord

	for _, record := range strings.Split(string(output), recordSep) {
		if strings.TrimSpace(record) == "" {
			continue
		}

		fields := strings.SplitN(record, fieldSep, 5)
		if len(fields) < 5 {
			e.logger.WithField("fields", len(fields)).Debug("skipping malformed commit record")
			continue
		}

		date, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			e.logger.WithField("date", fields[3]).Debug("skipping commit with unparseable date")
			continue
		}

		commits = append(commits, models.CommitRecord{
			Hash:     fields[0],
			Author:   fields[1],
			Email:    fields[2],
			Date:     date,
			Message:  strings.TrimSpace(fields[4]),
			RepoName: e.repoName,
			RepoPath: e.repoPath,
		})
	}

	return commits
}
