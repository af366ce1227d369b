package inspector_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/inspector/repository"
)

func TestFactory_Inspectors(t *testing.T) {
	tests := []struct {
		description string
		configure   func(cfg *config.Config)
		expect      []issue.Category
	}{
		{description: "all inspectors", expect: []issue.Category{issue.Assets, issue.Code}},
		{description: "assets only", configure: func(cfg *config.Config) { cfg.SkipCode = true }, expect: []issue.Category{issue.Assets}},
		{description: "code only", configure: func(cfg *config.Config) { cfg.SkipAssets = true }, expect: []issue.Category{issue.Code}},
	}
	registry, err := issue.DefaultRegistry()
	require.NoError(t, err)
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			cfg := config.DefaultConfig()
			if tc.configure != nil {
				tc.configure(cfg)
			}
			inspectors, err := inspector.NewFactory(cfg, registry, nil, nil).Inspectors(context.Background())
			require.NoError(t, err)
			var categories []issue.Category
			for _, candidate := range inspectors {
				categories = append(categories, candidate.Category())
			}
			assert.EqualValues(t, tc.expect, categories)
		})
	}
}

func TestFactory_Lister(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "deps.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("Assets/a.prefab: [Assets/b.png]\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Root = root
	cfg.Manifest = manifest
	lister, err := inspector.NewFactory(cfg, nil, nil, nil).Lister(context.Background(), repository.NewSource(root))
	require.NoError(t, err)
	dependencies, err := lister.Dependencies(context.Background(), "Assets/a.prefab", true)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"Assets/b.png"}, dependencies)

	cfg.Manifest = filepath.Join(root, "missing.yaml")
	_, err = inspector.NewFactory(cfg, nil, nil, nil).Lister(context.Background(), repository.NewSource(root))
	assert.Error(t, err)
}
