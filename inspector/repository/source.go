package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Source enumerates audited paths under a root; paths are relative and use "/" separators
type Source struct {
	root    string
	fs      afs.Service
	exclude map[string]bool
	dirs    map[string]bool
}

// NewSource creates a source, excluded names prune whole directories
func NewSource(root string, exclude ...string) *Source {
	ret := &Source{root: root, fs: afs.New(), exclude: make(map[string]bool), dirs: make(map[string]bool)}
	for _, name := range exclude {
		ret.exclude[name] = true
	}
	return ret
}

// Root returns source root
func (s *Source) Root() string {
	return s.root
}

// Paths returns sorted relative paths of files and directories
func (s *Source) Paths(ctx context.Context) ([]string, error) {
	var result []string
	dirs := make(map[string]bool)
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if s.exclude[info.Name()] {
			return false, nil
		}
		relative := path.Join(parent, info.Name())
		if info.IsDir() {
			dirs[relative] = true
		}
		result = append(result, relative)
		return true, nil
	}
	if err := s.fs.Walk(ctx, s.root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	s.dirs = dirs
	sort.Strings(result)
	return result, nil
}

// IsDir returns true if a path enumerated by Paths is a directory
func (s *Source) IsDir(relative string) bool {
	return s.dirs[strings.TrimSuffix(relative, "/")]
}

// URL returns the URL of a relative path
func (s *Source) URL(relative string) string {
	return url.Join(s.root, relative)
}

// Download returns content of a relative path
func (s *Source) Download(ctx context.Context, relative string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, s.URL(relative))
}

// Exists returns true if a relative path exists
func (s *Source) Exists(ctx context.Context, relative string) bool {
	ok, _ := s.fs.Exists(ctx, s.URL(relative))
	return ok
}
