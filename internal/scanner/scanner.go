package scanner

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/codetrail/gitreport/internal/errors"
	"github.com/codetrail/gitreport/internal/models"
	"github.com/sirupsen/logrus"
)

// Scanner recursively discovers git repository roots under a directory. The
// walk is depth-bounded, skips symlinks and hidden directories, and never
// descends into a repository once found.
//
// A Scanner is reusable but not safe for concurrent scans. Stop and Progress
// are the only methods intended to be called from another goroutine while a
// scan is running.
type Scanner struct {
	logger *logrus.Logger

	stopped     atomic.Bool
	reposFound  atomic.Int64
	dirsScanned atomic.Int64
}

// New creates a Scanner. The logger is required; directory-level failures are
// logged and skipped rather than aborting the scan.
func New(logger *logrus.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan walks rootPath up to maxDepth levels deep and returns a descriptor for
// every git repository found. The root itself is depth 0.
//
// Returns an InvalidPathError when rootPath does not exist or is not a
// directory. Per-directory failures (permissions, transient I/O) are logged
// and skipped. After Stop has been called the partial results collected so far
// are returned without error.
func (s *Scanner) Scan(rootPath string, maxDepth int) ([]models.RepoDescriptor, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, errors.InvalidPathErrorf("path does not exist: %s", rootPath)
	}
	if !info.IsDir() {
		return nil, errors.InvalidPathErrorf("path is not a directory: %s", rootPath)
	}

	s.stopped.Store(false)
	s.reposFound.Store(0)
	s.dirsScanned.Store(0)

	var repos []models.RepoDescriptor
	s.scanRecursive(rootPath, 0, maxDepth, &repos)
	return repos, nil
}

// Stop signals a running scan to terminate cooperatively. The scan returns
// partial results rather than an error.
func (s *Scanner) Stop() {
	s.stopped.Store(true)
}

// Progress returns the number of repositories found and directories visited so
// far. Safe to call while a scan is in flight.
func (s *Scanner) Progress() (reposFound, dirsScanned int64) {
	return s.reposFound.Load(), s.dirsScanned.Load()
}

func (s *Scanner) scanRecursive(path string, depth, maxDepth int, repos *[]models.RepoDescriptor) {
	if s.stopped.Load() {
		return
	}
	if depth > maxDepth {
		return
	}

	if isGitRepo(path) {
		name, email := s.readIdentity(path)
		*repos = append(*repos, models.RepoDescriptor{
			Name:        filepath.Base(path),
			Path:        path,
			AuthorName:  name,
			AuthorEmail: email,
			Depth:       depth,
			ParentPath:  filepath.Dir(path),
		})
		s.reposFound.Add(1)
		// Repositories are not nested in this model; prune the subtree.
		return
	}

	s.dirsScanned.Add(1)

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsPermission(err) {
			s.logger.WithField("path", path).Debug("skipping directory without permission")
		} else {
			s.logger.WithField("path", path).WithError(err).Warn("failed to read directory, skipping")
		}
		return
	}

	for _, entry := range entries {
		if s.stopped.Load() {
			return
		}

		// DirEntry reports symlinks as non-directories, so links to
		// directories never recurse and cycles cannot form.
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		s.scanRecursive(filepath.Join(path, entry.Name()), depth+1, maxDepth, repos)
	}
}

// isGitRepo reports whether path contains a .git directory.
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

// readIdentity reads user.name and user.email as git resolves them for the
// repository. Best effort: any failure yields empty strings.
func (s *Scanner) readIdentity(repoPath string) (name, email string) {
	name, err := gitConfig(repoPath, "user.name")
	if err != nil {
		s.logger.WithField("path", repoPath).Debug("no user.name configured")
	}
	email, err = gitConfig(repoPath, "user.email")
	if err != nil {
		s.logger.WithField("path", repoPath).Debug("no user.email configured")
	}
	return name, email
}

func gitConfig(repoPath, key string) (string, error) {
	cmd := exec.Command("git", "config", key)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
