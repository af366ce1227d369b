package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/auditor/inspector/issue"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		description string
		ext         string
		data        string
		expectErr   error
	}{
		{
			description: "yaml",
			ext:         ".yaml",
			data: `root: /tmp/project
resourceFolder: Resources
hotFunctions: [Update, ServeHTTP]
javascript: true
rules:
  - id: 101000
    filter: (*main.Server).ServeHTTP
    severity: none
views:
  - category: code
    group: false
    columns: [description, custom:0]
    custom:
      - name: Package
        format: string
`,
		},
		{
			description: "toml",
			ext:         ".toml",
			data: `root = "/tmp/project"
resourceFolder = "Resources"
hotFunctions = ["Update", "ServeHTTP"]
javascript = true

[[rules]]
id = 101000
filter = "(*main.Server).ServeHTTP"
severity = "None"

[[views]]
category = "Code"
group = false
columns = ["description", "custom:0"]

[[views.custom]]
name = "Package"
format = "string"
`,
		},
		{
			description: "unsupported",
			ext:         ".ini",
			data:        "root=/tmp",
			expectErr:   ErrUnsupportedFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			cfg := DefaultConfig()
			err := Decode(tc.ext, []byte(tc.data), cfg)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/tmp/project", cfg.Root)
			assert.Equal(t, "Resources", cfg.ResourceFolder)
			assert.Equal(t, "editor", cfg.EditorFolder, "default kept")
			assert.Equal(t, []string{"Update", "ServeHTTP"}, cfg.HotFunctions)
			assert.True(t, cfg.Javascript)
			require.Len(t, cfg.Rules, 1)
			assert.Equal(t, issue.SeverityNone, cfg.Rules[0].Severity)
			view := cfg.View(issue.Code)
			require.NotNil(t, view)
			assert.False(t, view.Group)
			require.Len(t, view.Custom, 1)
			assert.Equal(t, "Package", view.Custom[0].Name)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	URL := filepath.Join(dir, "auditor.yaml")
	require.NoError(t, os.WriteFile(URL, []byte("root: assets\ncriticalAssets: ['Scenes/*']\n"), 0o644))

	cfg, err := Load(context.Background(), URL)
	require.NoError(t, err)
	assert.Equal(t, "assets", cfg.Root)
	assert.Equal(t, []string{"Scenes/*"}, cfg.CriticalAssets)
	assert.Equal(t, []string{".go"}, cfg.SourceExtensions)

	_, err = Load(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRules_Get(t *testing.T) {
	rules := Rules{}
	rules.Add(&Rule{ID: 1, Severity: issue.SeverityError})
	rules.Add(&Rule{ID: 1, Filter: "main.hot", Severity: issue.SeverityNone})
	rules.Add(&Rule{ID: 1, Severity: issue.SeverityWarning})

	assert.Len(t, rules, 2)
	assert.Equal(t, issue.SeverityNone, rules.Get(1, "main.hot").Severity)
	assert.Equal(t, issue.SeverityWarning, rules.Get(1, "main.cold").Severity)
	assert.Nil(t, rules.Get(2, ""))
	assert.False(t, rules.IsMuted(nil))
}
