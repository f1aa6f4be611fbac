package config

import "slices"

// Config is the persisted hearth state.
type Config struct {
	// Ignores lists dotfile names that are never installed.
	Ignores []string
	// Folders is persisted for compatibility and not used by any logic.
	Folders bool
	// ActiveSource is the directory of the most recently installed remote
	// source. Empty when no source is active.
	ActiveSource string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Ignores: []string{".git", ".gitignore"},
	}
}

func (c *Config) HasActiveSource() bool {
	return c.ActiveSource != ""
}

func (c *Config) SetActiveSource(dir string) {
	c.ActiveSource = dir
}

func (c *Config) ClearActiveSource() {
	c.ActiveSource = ""
}

// IsIgnored reports whether name is listed in Ignores.
func (c *Config) IsIgnored(name string) bool {
	return slices.Contains(c.Ignores, name)
}

// fileConfig mirrors the on-disk layout.
type fileConfig struct {
	Default defaultSection  `koanf:"default" toml:"default"`
	Current *currentSection `koanf:"current" toml:"current,omitempty"`
}

type defaultSection struct {
	Ignores []string `koanf:"ignores" toml:"ignores"`
	Folders bool     `koanf:"folders" toml:"folders"`
}

type currentSection struct {
	Repo string `koanf:"repo" toml:"repo"`
}

func (fc *fileConfig) toConfig() *Config {
	cfg := &Config{
		Ignores: fc.Default.Ignores,
		Folders: fc.Default.Folders,
	}
	if cfg.Ignores == nil {
		cfg.Ignores = []string{}
	}
	if fc.Current != nil {
		cfg.ActiveSource = fc.Current.Repo
	}
	return cfg
}

func fromConfig(cfg *Config) *fileConfig {
	fc := &fileConfig{
		Default: defaultSection{
			Ignores: cfg.Ignores,
			Folders: cfg.Folders,
		},
	}
	if fc.Default.Ignores == nil {
		fc.Default.Ignores = []string{}
	}
	if cfg.HasActiveSource() {
		fc.Current = &currentSection{Repo: cfg.ActiveSource}
	}
	return fc
}
