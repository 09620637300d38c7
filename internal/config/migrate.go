package config

// migrate upgrades legacy configuration layouts in place at the load boundary.
// Two historical shapes are handled:
//
//   - a single top-level repo_path/author_name/author_email triple, replaced
//     by the repos entry list
//   - a single ai.prompt template, split into ai.system_prompt (default) and
//     ai.user_prompt (the old template)
//
// The core pipeline only ever sees the migrated shape.
func migrate(s *Store) {
	migrateSingleRepo(s)
	migrateLegacyPrompt(s)
}

func migrateSingleRepo(s *Store) {
	repoPath := s.v.GetString("repo_path")
	// InConfig looks only at the file contents, not at defaults.
	if repoPath == "" || s.v.InConfig("repos") {
		return
	}

	s.AddRepo(
		"default",
		repoPath,
		s.v.GetString("author_name"),
		s.v.GetString("author_email"),
		true,
	)
}

func migrateLegacyPrompt(s *Store) {
	legacy := s.v.GetString("ai.prompt")
	if legacy == "" {
		return
	}
	if s.v.InConfig("ai.system_prompt") || s.v.InConfig("ai.user_prompt") {
		return
	}

	s.v.Set("ai.user_prompt", legacy)
	s.v.Set("ai.system_prompt", DefaultSystemPrompt)
}
