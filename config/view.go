package config

import "github.com/viant/auditor/inspector/issue"

// View describes how a category is presented
type View struct {
	Category issue.Category  `yaml:"category" toml:"category"`
	Group    bool            `yaml:"group" toml:"group"`
	Columns  []string        `yaml:"columns,omitempty" toml:"columns"`
	Custom   []*CustomColumn `yaml:"custom,omitempty" toml:"custom"`
}

// CustomColumn describes a custom property column
type CustomColumn struct {
	Name   string `yaml:"name" toml:"name"`
	Format string `yaml:"format,omitempty" toml:"format"` // string, bool or integer
}

// DefaultViews returns built-in views
func DefaultViews() []*View {
	return []*View{
		{
			Category: issue.Assets,
			Group:    true,
			Columns:  []string{"description", "filetype", "path"},
		},
		{
			Category: issue.Code,
			Group:    true,
			Columns:  []string{"description", "severity", "area", "filename", "custom:0"},
			Custom:   []*CustomColumn{{Name: "Package", Format: "string"}},
		},
	}
}
