package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/auditor/inspector/repository"
)

func writeTree(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return root
}

func TestSource_Paths(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Assets/Resources/ui.prefab": "ui",
		"Assets/Art/atlas.png":       "png",
		"src/main.go":                "package main",
		"node_modules/left/index.js": "module.exports = 1",
		"Assets/Editor/tool.prefab":  "tool",
	})
	source := repository.NewSource(root, "node_modules")
	paths, err := source.Paths(context.Background())
	require.NoError(t, err)

	assert.Contains(t, paths, "Assets/Resources/ui.prefab")
	assert.Contains(t, paths, "Assets/Art/atlas.png")
	assert.Contains(t, paths, "src/main.go")
	assert.Contains(t, paths, "Assets/Editor")
	for _, aPath := range paths {
		assert.NotContains(t, aPath, "node_modules")
	}
	assert.True(t, source.IsDir("Assets/Art"))
	assert.False(t, source.IsDir("Assets/Art/atlas.png"))
	assert.False(t, source.IsDir("unknown"))

	content, err := source.Download(context.Background(), "Assets/Art/atlas.png")
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))
	assert.True(t, source.Exists(context.Background(), "src/main.go"))
	assert.False(t, source.Exists(context.Background(), "src/missing.go"))
}

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		location    string
		expectType  string
		expectName  string
	}{
		{
			description: "go module",
			files:       map[string]string{"go.mod": "module example.com/game\n\ngo 1.23\n", "pkg/a.go": "package pkg"},
			location:    "pkg",
			expectType:  "go",
			expectName:  "example.com/game",
		},
		{
			description: "javascript package",
			files:       map[string]string{"package.json": `{"name": "web-client"}`, "src/index.js": ""},
			location:    "src/index.js",
			expectType:  "javascript",
			expectName:  "web-client",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := writeTree(t, tc.files)
			project, err := repository.NewDetector().DetectProject(context.Background(), filepath.Join(root, tc.location))
			require.NoError(t, err)
			assert.Equal(t, tc.expectType, project.Type)
			assert.Equal(t, tc.expectName, project.Name)
			expectRoot, _ := filepath.Abs(root)
			assert.Equal(t, expectRoot, project.RootPath)
		})
	}
}
