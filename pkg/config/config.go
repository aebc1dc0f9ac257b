package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	TemplatesDir string `yaml:"templates_dir"`
	ProjectsDir  string `yaml:"projects_dir"`
	Editor       string `yaml:"editor"`

	// DefaultContext is merged under caller-supplied variables on every
	// project creation, so templates can rely on e.g. author and email
	// without asking each time.
	DefaultContext map[string]string `yaml:"default_context"`

	Backup BackupConfig `yaml:"backup"`
}

type BackupConfig struct {
	Remote string `yaml:"remote"`
	Branch string `yaml:"branch"`
}

func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wrd"
	}
	return filepath.Join(homeDir, ".wrd")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func DefaultTemplatesDir() string {
	return filepath.Join(DefaultConfigDir(), "templates")
}

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = DefaultTemplatesDir()
	}
	if cfg.ProjectsDir == "" {
		cfg.ProjectsDir = defaultProjectsDir()
	}
	if cfg.Editor == "" {
		cfg.Editor = defaultEditor()
	}
	if cfg.DefaultContext == nil {
		cfg.DefaultContext = map[string]string{}
	}
	if cfg.Backup.Remote == "" {
		cfg.Backup.Remote = "origin"
	}
	if cfg.Backup.Branch == "" {
		cfg.Backup.Branch = "main"
	}
}

func defaultProjectsDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "projects"
	}
	return filepath.Join(homeDir, "projects")
}

func defaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func EnsureConfigDir() error {
	configDir := DefaultConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// Set updates a single setting by its yaml key. Keys under default_context
// use a "default_context.<name>" form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "templates_dir":
		c.TemplatesDir = value
	case "projects_dir":
		c.ProjectsDir = value
	case "editor":
		c.Editor = value
	case "backup.remote":
		c.Backup.Remote = value
	case "backup.branch":
		c.Backup.Branch = value
	default:
		if name, ok := strings.CutPrefix(key, "default_context."); ok && name != "" {
			if c.DefaultContext == nil {
				c.DefaultContext = map[string]string{}
			}
			c.DefaultContext[name] = value
			return nil
		}
		return fmt.Errorf("unknown setting '%s'", key)
	}
	return nil
}

// Save writes the config to the given path, or the default path when empty.
func (c *Config) Save(configPath string) error {
	if configPath == "" {
		if err := EnsureConfigDir(); err != nil {
			return err
		}
		configPath = DefaultConfigPath()
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// WriteDefaultConfig creates the default config file if none exists yet.
func WriteDefaultConfig() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath := DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	return DefaultConfig().Save(configPath)
}
