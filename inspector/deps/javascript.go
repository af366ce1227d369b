package deps

import (
	"context"
	"fmt"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"go.uber.org/zap"
)

// Reader reads files relative to an audited root
type Reader interface {
	Download(ctx context.Context, relative string) ([]byte, error)
	Exists(ctx context.Context, relative string) bool
}

var (
	scriptExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}
	indexFiles       = []string{"index.js", "index.jsx", "index.mjs"}
)

// Javascript lists files referenced by relative import, export from and require specifiers
type Javascript struct {
	reader  Reader
	logger  *zap.Logger
	imports map[string][]string // resolved imports per file
}

// NewJavascript creates a JavaScript import lister
func NewJavascript(reader Reader, logger *zap.Logger) *Javascript {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Javascript{reader: reader, logger: logger, imports: map[string][]string{}}
}

// IsScript returns true for JavaScript module files
func IsScript(aPath string) bool {
	ext := strings.ToLower(path.Ext(aPath))
	for _, candidate := range scriptExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// Dependencies returns resolved imports of a script, depth first when recursive; other files have none
func (j *Javascript) Dependencies(ctx context.Context, aPath string, recursive bool) ([]string, error) {
	if !IsScript(aPath) {
		return nil, nil
	}
	direct, err := j.resolvedImports(ctx, aPath)
	if err != nil {
		return nil, err
	}
	if !recursive {
		return direct, nil
	}
	visited := map[string]bool{aPath: true}
	var result []string
	var visit func(imports []string)
	visit = func(imports []string) {
		for _, candidate := range imports {
			if visited[candidate] {
				continue
			}
			visited[candidate] = true
			result = append(result, candidate)
			if !IsScript(candidate) {
				continue
			}
			nested, err := j.resolvedImports(ctx, candidate)
			if err != nil {
				j.logger.Warn("skipping unreadable import", zap.String("path", candidate), zap.Error(err))
				continue
			}
			visit(nested)
		}
	}
	visit(direct)
	return result, nil
}

func (j *Javascript) resolvedImports(ctx context.Context, aPath string) ([]string, error) {
	if imports, ok := j.imports[aPath]; ok {
		return imports, nil
	}
	src, err := j.reader.Download(ctx, aPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", aPath, err)
	}
	specifiers, err := ParseImports(ctx, src)
	if err != nil {
		j.logger.Warn("failed to parse script", zap.String("path", aPath), zap.Error(err))
	}
	var result []string
	for _, specifier := range specifiers {
		if resolved := j.resolve(ctx, aPath, specifier); resolved != "" {
			result = append(result, resolved)
		}
	}
	j.imports[aPath] = result
	return result, nil
}

// resolve maps a relative specifier to an existing file, bare package specifiers are ignored
func (j *Javascript) resolve(ctx context.Context, importer, specifier string) string {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		return ""
	}
	base := path.Join(path.Dir(importer), specifier)
	if strings.HasPrefix(base, "../") {
		return ""
	}
	candidates := []string{base}
	for _, ext := range scriptExtensions {
		candidates = append(candidates, base+ext)
	}
	for _, index := range indexFiles {
		candidates = append(candidates, path.Join(base, index))
	}
	for _, candidate := range candidates {
		if j.reader.Exists(ctx, candidate) {
			if candidate == base && path.Ext(base) == "" {
				continue // directory
			}
			return candidate
		}
	}
	return ""
}

// ParseImports returns module specifiers of import, export from, require and dynamic import expressions
func ParseImports(ctx context.Context, src []byte) ([]string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	var result []string
	seen := map[string]bool{}
	add := func(specifier string) {
		if specifier == "" || seen[specifier] {
			return
		}
		seen[specifier] = true
		result = append(result, specifier)
	}
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		switch node.Type() {
		case "import_statement", "export_statement":
			add(stringChild(node, src))
		case "call_expression":
			if callee := node.ChildByFieldName("function"); callee != nil {
				name := callee.Content(src)
				if name == "require" || callee.Type() == "import" {
					if args := node.ChildByFieldName("arguments"); args != nil {
						add(stringChild(args, src))
					}
				}
			}
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i))
		}
	}
	walk(tree.RootNode())
	return result, nil
}

func stringChild(node *sitter.Node, src []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "string" {
			return strings.Trim(child.Content(src), "'\"`")
		}
	}
	return ""
}
