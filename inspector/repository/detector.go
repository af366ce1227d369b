package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies the project root of an audited tree
type Detector struct {
	fs      afs.Service
	markers []string
}

// NewDetector creates a project detector
func NewDetector() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"go.mod",       // Go projects
			"package.json", // JavaScript projects
			".git",         // Generic VCS marker
		},
	}
}

// DetectProject searches up from location for project markers
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	ret := &Project{Type: "unknown", RootPath: startDir, Name: filepath.Base(startDir)}
	rootPath, projectType := d.findProjectRoot(startDir)
	if rootPath == "" {
		return ret, nil
	}
	ret.RootPath = rootPath
	ret.Type = projectType
	ret.Name = filepath.Base(rootPath)
	switch projectType {
	case "go":
		if module := d.goModule(ctx, filepath.Join(rootPath, "go.mod")); module != nil {
			ret.GoModule = module
			ret.Name = module.Mod.Path
		}
	case "javascript":
		if name := d.packageName(ctx, filepath.Join(rootPath, "package.json")); name != "" {
			ret.Name = name
		}
	}
	if gitRoot := findGitRoot(rootPath); gitRoot != "" {
		ret.Origin = extractGitOrigin(gitRoot)
	}
	return ret, nil
}

func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, projectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) goModule(ctx context.Context, goModPath string) *modfile.Module {
	content, _ := d.fs.DownloadWithURL(ctx, goModPath)
	if len(content) == 0 {
		return nil
	}
	if mod, _ := modfile.ParseLax(goModPath, content, nil); mod != nil {
		return mod.Module
	}
	return nil
}

func (d *Detector) packageName(ctx context.Context, packageJSONPath string) string {
	content, _ := d.fs.DownloadWithURL(ctx, packageJSONPath)
	if len(content) == 0 {
		return ""
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

func findGitRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func extractGitOrigin(gitRoot string) string {
	file, err := os.Open(filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "[remote \"origin\"]") {
			foundRemote = true
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

func projectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "package.json":
		return "javascript"
	case ".git":
		return "git"
	}
	return "unknown"
}
