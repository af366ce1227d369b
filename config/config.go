package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"github.com/viant/auditor/inspector/issue"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files other than yaml or toml
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config represents audit configuration
type Config struct {
	Root             string   `yaml:"root" toml:"root"`
	Exclude          []string `yaml:"exclude,omitempty" toml:"exclude"`
	SourceExtensions []string `yaml:"sourceExtensions,omitempty" toml:"sourceExtensions"`
	ResourceFolder   string   `yaml:"resourceFolder,omitempty" toml:"resourceFolder"`
	EditorFolder     string   `yaml:"editorFolder,omitempty" toml:"editorFolder"`
	CriticalAssets   []string `yaml:"criticalAssets,omitempty" toml:"criticalAssets"`
	HotFunctions     []string `yaml:"hotFunctions,omitempty" toml:"hotFunctions"`
	Descriptors      string   `yaml:"descriptors,omitempty" toml:"descriptors"`
	Manifest         string   `yaml:"manifest,omitempty" toml:"manifest"`
	Javascript       bool     `yaml:"javascript,omitempty" toml:"javascript"`
	SkipCode         bool     `yaml:"skipCode,omitempty" toml:"skipCode"`
	SkipAssets       bool     `yaml:"skipAssets,omitempty" toml:"skipAssets"`
	Rules            Rules    `yaml:"rules,omitempty" toml:"rules"`
	Views            []*View  `yaml:"views,omitempty" toml:"views"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Root:             ".",
		Exclude:          []string{".git", "node_modules", "vendor"},
		SourceExtensions: []string{".go"},
		ResourceFolder:   "resources",
		EditorFolder:     "editor",
		HotFunctions:     []string{"ServeHTTP"},
		Views:            DefaultViews(),
	}
}

// Load loads configuration from URL, fields not set keep their default values
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = Decode(path.Ext(URL), data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	return ret, nil
}

// Decode decodes data by extension into cfg
func Decode(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// View returns view for a category or nil
func (c *Config) View(category issue.Category) *View {
	for _, view := range c.Views {
		if view.Category == category {
			return view
		}
	}
	return nil
}
