package code

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector/graph"
	"github.com/viant/auditor/inspector/issue"
	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedModule

// Auditor loads Go packages, builds the reverse call graph and reports calls matching call descriptors
type Auditor struct {
	config   *config.Config
	registry *issue.Registry
	logger   *zap.Logger
}

// Option configures an Auditor
type Option func(*Auditor)

// WithLogger sets auditor logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *Auditor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates a code auditor
func New(cfg *config.Config, registry *issue.Registry, options ...Option) *Auditor {
	ret := &Auditor{config: cfg, registry: registry, logger: zap.NewNop()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Category returns Code
func (a *Auditor) Category() issue.Category {
	return issue.Code
}

// callSite is a matched call of a descriptor
type callSite struct {
	descriptor *issue.Descriptor
	callee     *types.Func
	caller     string
	pkgPath    string
	file       string
	line       int
}

// Audit returns issues for matched call sites, the graph holds function nodes whose children are their callers
func (a *Auditor) Audit(ctx context.Context) ([]*issue.Issue, *graph.Graph, error) {
	root, err := filepath.Abs(a.config.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve root %s: %w", a.config.Root, err)
	}
	pkgs, err := packages.Load(&packages.Config{Context: ctx, Mode: loadMode, Dir: root}, "./...")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}
	rules := a.registry.CallDescriptors()
	calls := graph.New(graph.KindCall)
	var sites []*callSite
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			a.logger.Warn("package error", zap.String("package", pkg.PkgPath), zap.String("error", pkgErr.Error()))
		}
		if pkg.TypesInfo == nil {
			continue
		}
		for _, file := range pkg.Syntax {
			sites = append(sites, a.inspectFile(root, pkg, file, rules, calls)...)
		}
	}
	a.markHot(calls)

	var issues []*issue.Issue
	for _, site := range sites {
		anIssue, err := newCallIssue(site, calls)
		if err != nil {
			return nil, nil, err
		}
		issues = append(issues, anIssue)
	}
	a.logger.Info("code audited",
		zap.Int("packages", len(pkgs)),
		zap.Int("functions", calls.Len()),
		zap.Int("issues", len(issues)))
	return issues, calls, nil
}

func (a *Auditor) inspectFile(root string, pkg *packages.Package, file *ast.File, rules []*issue.Descriptor, calls *graph.Graph) []*callSite {
	var result []*callSite
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Body == nil {
			continue
		}
		callerFunc, _ := pkg.TypesInfo.Defs[funcDecl.Name].(*types.Func)
		if callerFunc == nil {
			continue
		}
		caller := calls.Ensure(callerFunc.FullName(), func() *graph.Node { return newFuncNode(callerFunc) })
		ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			callee := calledFunc(pkg.TypesInfo, call)
			if callee == nil {
				return true
			}
			if (callee.Pkg() != nil && callee.Pkg().Path() == pkg.PkgPath) || isLocal(callee, pkg) {
				calls.Ensure(callee.FullName(), func() *graph.Node { return newFuncNode(callee) }).AddChild(caller)
			}
			descriptor := match(rules, callee)
			if descriptor == nil {
				return true
			}
			position := pkg.Fset.Position(call.Pos())
			relative, err := filepath.Rel(root, position.Filename)
			if err != nil {
				relative = position.Filename
			}
			result = append(result, &callSite{
				descriptor: descriptor,
				callee:     callee,
				caller:     caller.ID(),
				pkgPath:    pkg.PkgPath,
				file:       filepath.ToSlash(relative),
				line:       position.Line,
			})
			return true
		})
	}
	return result
}

// isLocal returns true if callee is declared in an imported package of the audited module
func isLocal(callee *types.Func, pkg *packages.Package) bool {
	if callee.Pkg() == nil || pkg.Module == nil {
		return false
	}
	return strings.HasPrefix(callee.Pkg().Path(), pkg.Module.Path+"/")
}

func (a *Auditor) markHot(calls *graph.Graph) {
	hot := make(map[string]bool, len(a.config.HotFunctions))
	for _, name := range a.config.HotFunctions {
		hot[name] = true
	}
	for _, node := range calls.Nodes() {
		if hot[node.MethodName] || hot[node.PrettyName()] || hot[node.ID()] {
			node.Critical = true
		}
	}
}

func newCallIssue(site *callSite, calls *graph.Graph) (*issue.Issue, error) {
	node := graph.NewCallNode(site.callee.FullName(), typeName(site.callee), site.callee.Name(), calls.Lookup(site.caller))
	ret := issue.New(site.descriptor, site.callee.FullName(), issue.Code, issue.NewLocation(site.file, site.line)).WithNode(node)
	if err := ret.SetCustomProperties(site.pkgPath); err != nil {
		return nil, fmt.Errorf("failed to set %v properties: %w", site.callee.FullName(), err)
	}
	return ret, nil
}

func calledFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	var ident *ast.Ident
	switch fn := astutil.Unparen(call.Fun).(type) {
	case *ast.Ident:
		ident = fn
	case *ast.SelectorExpr:
		ident = fn.Sel
	default:
		return nil
	}
	callee, _ := info.Uses[ident].(*types.Func)
	return callee
}

// match returns the first descriptor whose call pattern matches the callee
func match(rules []*issue.Descriptor, callee *types.Func) *issue.Descriptor {
	fullName := callee.FullName()
	for _, descriptor := range rules {
		pattern := descriptor.Call
		if pkgPath, ok := strings.CutSuffix(pattern, ".*"); ok {
			if callee.Pkg() != nil && callee.Pkg().Path() == pkgPath {
				return descriptor
			}
			continue
		}
		if pattern == fullName {
			return descriptor
		}
	}
	return nil
}

func newFuncNode(fn *types.Func) *graph.Node {
	return graph.NewCallNode(fn.FullName(), typeName(fn), fn.Name(), nil)
}

// typeName returns the receiver type name of a method or the package name of a function
func typeName(fn *types.Func) string {
	sig, _ := fn.Type().(*types.Signature)
	if sig != nil && sig.Recv() != nil {
		recv := sig.Recv().Type()
		if ptr, ok := recv.(*types.Pointer); ok {
			recv = ptr.Elem()
		}
		switch actual := recv.(type) {
		case *types.Named:
			return actual.Obj().Name()
		case *types.Interface:
			return ""
		}
		return recv.String()
	}
	if fn.Pkg() == nil {
		return ""
	}
	return fn.Pkg().Name()
}
