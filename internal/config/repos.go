package config

import (
	"github.com/google/uuid"
)

// RepoEntry is one configured repository. The scanner appends new entries and
// the collector consumes the enabled ones; everything else about persistence
// stays in this package.
type RepoEntry struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Path        string `json:"path" mapstructure:"path"`
	AuthorName  string `json:"author_name" mapstructure:"author_name"`
	AuthorEmail string `json:"author_email" mapstructure:"author_email"`
	Enabled     bool   `json:"enabled" mapstructure:"enabled"`
}

// Repos returns all configured repository entries.
func (s *Store) Repos() []RepoEntry {
	var entries []RepoEntry
	if err := s.v.UnmarshalKey("repos", &entries); err != nil {
		return nil
	}
	return entries
}

// EnabledRepos returns only the entries currently enabled.
func (s *Store) EnabledRepos() []RepoEntry {
	var enabled []RepoEntry
	for _, entry := range s.Repos() {
		if entry.Enabled {
			enabled = append(enabled, entry)
		}
	}
	return enabled
}

// AddRepo appends a new repository entry and returns its generated id.
func (s *Store) AddRepo(name, path, authorName, authorEmail string, enabled bool) string {
	entry := RepoEntry{
		ID:          uuid.New().String(),
		Name:        name,
		Path:        path,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Enabled:     enabled,
	}
	s.setRepos(append(s.Repos(), entry))
	return entry.ID
}

// UpdateRepo replaces the fields of the entry with the given id. Returns false
// when no entry matches.
func (s *Store) UpdateRepo(id string, update RepoEntry) bool {
	entries := s.Repos()
	for i := range entries {
		if entries[i].ID == id {
			update.ID = id
			entries[i] = update
			s.setRepos(entries)
			return true
		}
	}
	return false
}

// DeleteRepo removes the entry with the given id. Returns false when no entry
// matches.
func (s *Store) DeleteRepo(id string) bool {
	entries := s.Repos()
	kept := entries[:0:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return false
	}
	s.setRepos(kept)
	return true
}

// ToggleRepo flips the enabled flag of the entry with the given id. Returns
// false when no entry matches.
func (s *Store) ToggleRepo(id string) bool {
	entries := s.Repos()
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Enabled = !entries[i].Enabled
			s.setRepos(entries)
			return true
		}
	}
	return false
}

// RepoByID returns the entry with the given id, if any.
func (s *Store) RepoByID(id string) (RepoEntry, bool) {
	for _, entry := range s.Repos() {
		if entry.ID == id {
			return entry, true
		}
	}
	return RepoEntry{}, false
}

// setRepos writes the entry list back as plain maps so the store serializes
// them the same way regardless of how they were loaded.
func (s *Store) setRepos(entries []RepoEntry) {
	maps := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		maps = append(maps, map[string]interface{}{
			"id":           entry.ID,
			"name":         entry.Name,
			"path":         entry.Path,
			"author_name":  entry.AuthorName,
			"author_email": entry.AuthorEmail,
			"enabled":      entry.Enabled,
		})
	}
	s.v.Set("repos", maps)
}
