package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Databases holds the IDs of the four Notion databases the tool writes to.
type Databases struct {
	Applications string `yaml:"applications"`
	Networking   string `yaml:"networking"`
	Interviews   string `yaml:"interviews"`
	FollowUps    string `yaml:"followups"`
}

// NotionConfig holds Notion API settings. The token never comes from the
// config file, only from the environment.
type NotionConfig struct {
	Token     string    `yaml:"-"`
	Databases Databases `yaml:"databases"`
}

// SyncConfig holds thread-sync settings.
type SyncConfig struct {
	ThreadsPath string `yaml:"threads_path"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the full process configuration, built once at startup and
// passed by reference to every component.
type Config struct {
	Notion  NotionConfig  `yaml:"notion"`
	Sync    SyncConfig    `yaml:"sync"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load builds the configuration: defaults, then the optional YAML file at
// path, then environment overrides. NOTION_TOKEN must be set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // optional
	cfg := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	applyEnvOverrides(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() Config {
	var cfg Config
	cfg.Notion.Databases.Applications = "2c356c757b0780968c5cc58ea0ef1b30"
	cfg.Notion.Databases.Networking = "2c356c757b0780f19699c11e1f5e7db1"
	cfg.Notion.Databases.Interviews = "2c356c757b07803f91d5f1836877fc7b"
	cfg.Notion.Databases.FollowUps = "2c456c757b07807b82aefb0c868a58d4"
	cfg.Sync.ThreadsPath = "project_threads.json"
	cfg.Logging.Level = "info"
	cfg.Logging.File = "jobsync.log"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	cfg.Notion.Token = os.Getenv("NOTION_TOKEN")
	if v := os.Getenv("JOBSYNC_DB_APPLICATIONS"); v != "" {
		cfg.Notion.Databases.Applications = v
	}
	if v := os.Getenv("JOBSYNC_DB_NETWORKING"); v != "" {
		cfg.Notion.Databases.Networking = v
	}
	if v := os.Getenv("JOBSYNC_DB_INTERVIEWS"); v != "" {
		cfg.Notion.Databases.Interviews = v
	}
	if v := os.Getenv("JOBSYNC_DB_FOLLOWUPS"); v != "" {
		cfg.Notion.Databases.FollowUps = v
	}
	if v := os.Getenv("JOBSYNC_THREADS_PATH"); v != "" {
		cfg.Sync.ThreadsPath = v
	}
	if v := os.Getenv("JOBSYNC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("JOBSYNC_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

func validate(cfg *Config) error {
	if cfg.Notion.Token == "" {
		return errors.New("NOTION_TOKEN is required in env")
	}
	if cfg.Notion.Databases.Applications == "" {
		return errors.New("notion.databases.applications is required")
	}
	if cfg.Notion.Databases.Networking == "" {
		return errors.New("notion.databases.networking is required")
	}
	if cfg.Notion.Databases.Interviews == "" {
		return errors.New("notion.databases.interviews is required")
	}
	if cfg.Notion.Databases.FollowUps == "" {
		return errors.New("notion.databases.followups is required")
	}
	return nil
}
