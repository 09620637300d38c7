package collect

import (
	"context"
	"sort"
	"sync"

	"github.com/codetrail/gitreport/internal/config"
	"github.com/codetrail/gitreport/internal/git"
	"github.com/codetrail/gitreport/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FailedRepo records one repository whose extraction failed during a
// multi-repository collection.
type FailedRepo struct {
	Name string
	Path string
	Err  error
}

// Result is the outcome of collecting commits across repositories. Failures
// are isolated per repository: Commits always carries whatever succeeded,
// sorted by commit date descending.
type Result struct {
	Commits []models.CommitRecord
	Failed  []FailedRepo
}

// Collector runs one extraction per configured repository. Extractions are
// independent of each other, so they run concurrently with a bounded number
// of workers; a failing repository never aborts the others.
type Collector struct {
	logger  *logrus.Logger
	workers int
}

// New creates a Collector. workers bounds the number of concurrent
// extractions; values below 1 fall back to 4.
func New(logger *logrus.Logger, workers int) *Collector {
	if workers < 1 {
		workers = 4
	}
	return &Collector{logger: logger, workers: workers}
}

// Collect extracts commits from every entry using the given filter. Entries
// without per-entry author settings inherit the filter's author fields; an
// entry carrying its own author name/email overrides them.
func (c *Collector) Collect(ctx context.Context, entries []config.RepoEntry, filter git.CommitFilter) Result {
	var (
		mu     sync.Mutex
		result Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			commits, err := c.collectOne(ctx, entry, filter)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.WithFields(logrus.Fields{
					"repo": entry.Name,
					"path": entry.Path,
				}).WithError(err).Warn("repository extraction failed")
				result.Failed = append(result.Failed, FailedRepo{Name: entry.Name, Path: entry.Path, Err: err})
				return nil
			}
			result.Commits = append(result.Commits, commits...)
			return nil
		})
	}

	g.Wait()

	sort.SliceStable(result.Commits, func(i, j int) bool {
		return result.Commits[i].Date.After(result.Commits[j].Date)
	})

	return result
}

func (c *Collector) collectOne(ctx context.Context, entry config.RepoEntry, filter git.CommitFilter) ([]models.CommitRecord, error) {
	extractor, err := git.NewExtractor(entry.Path, entry.Name, c.logger)
	if err != nil {
		return nil, err
	}

	if entry.AuthorName != "" {
		filter.AuthorName = entry.AuthorName
	}
	if entry.AuthorEmail != "" {
		filter.AuthorEmail = entry.AuthorEmail
	}

	return extractor.Commits(ctx, filter)
}
