package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSystemPrompt defines the assistant role used when the configuration
// carries no system prompt of its own.
const DefaultSystemPrompt = `You are a seasoned engineering lead who turns technical work into clear, professional reports. Your reports are concise, highlight what matters, and let management grasp progress at a glance.`

// DefaultUserPrompt is the default user-prompt template. It carries the
// literal {commit_log} and {example} placeholders that the AI layer
// substitutes before sending.
const DefaultUserPrompt = `Task: write a work report from the information below.
Rules (follow them exactly):
1) If the input contains an [Example] section, you must reproduce the example format precisely and output only content in that format, replacing only the entry text. Do not add or remove symbols, numbering, or line breaks, and do not add commentary.
2) In example mode all other general rules (word limits, Markdown) no longer apply; output only the plain numbered list the example shows.
3) If the input has no [Example] section, follow the general report rules instead (group by module, under 500 words, Markdown).
{commit_log}

[Example]
{example}
(When an [Example] is present, output only a numbered list in the same format, nothing more.)`

// Store is a dotted-path configuration store backed by a JSON file. It owns
// the repository entry list and the AI settings the rest of the pipeline
// consumes. Values are read with viper's dotted-key semantics, e.g.
// "ai.provider" or "ai.configs.openai.api_key".
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns the default config file location under the user's home
// directory.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".gitreport", "config.json")
}

// Load reads the configuration file at path, creating an in-memory store with
// defaults when the file does not exist. Legacy layouts are migrated in place
// before defaults are merged, so the rest of the program only ever sees the
// current shape.
func Load(path string) (*Store, error) {
	loadEnvFiles()

	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		// Missing config file is fine, defaults apply.
	}

	s := &Store{v: v, path: path}
	migrate(s)
	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("repos", []map[string]interface{}{})
	v.SetDefault("log_level", "info")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.system_prompt", DefaultSystemPrompt)
	v.SetDefault("ai.user_prompt", DefaultUserPrompt)
	v.SetDefault("ai.report_example", "")
	v.SetDefault("ai.use_example", false)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.configs.openai.api_key", "")
	v.SetDefault("ai.configs.openai.model", "gpt-4o-mini")
	v.SetDefault("ai.configs.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.configs.deepseek.api_key", "")
	v.SetDefault("ai.configs.deepseek.model", "deepseek-chat")
	v.SetDefault("ai.configs.deepseek.base_url", "https://api.deepseek.com")
	v.SetDefault("ai.configs.zhipu.api_key", "")
	v.SetDefault("ai.configs.zhipu.model", "glm-4-flash")
}

// Get returns the value at a dotted key path, or nil when unset.
func (s *Store) Get(key string) interface{} {
	return s.v.Get(key)
}

// GetString returns the string value at a dotted key path.
func (s *Store) GetString(key string) string {
	return s.v.GetString(key)
}

// GetBool returns the boolean value at a dotted key path.
func (s *Store) GetBool(key string) bool {
	return s.v.GetBool(key)
}

// GetFloat64 returns the float value at a dotted key path.
func (s *Store) GetFloat64(key string) float64 {
	return s.v.GetFloat64(key)
}

// Set writes a value at a dotted key path. The change is in-memory until Save
// is called.
func (s *Store) Set(key string, value interface{}) {
	s.v.Set(key, value)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save persists the configuration to its backing file, creating the parent
// directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}

// loadEnvFiles loads .env files so provider API keys can come from the
// environment instead of the config file.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".gitreport", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}
