package conceptcheck

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// ErrUnknownImport is returned when a probe imports a package the Checker
// did not load.
var ErrUnknownImport = errors.New("package not loaded")

type Config struct {
	// Dir is a directory inside a module that can resolve ConceptsPath.
	// Empty means the current directory.
	Dir string
	// Imports are extra packages probes may import.
	Imports []string
	// Jobs bounds how many probes Run checks at once. Zero means NumCPU.
	Jobs int
}

// Checker answers Cases by type-checking probe files against packages loaded
// once up front. It is safe for concurrent use.
type Checker struct {
	pkgs map[string]*types.Package
	jobs int
}

// Result is the type checker's answer to one Case.
type Result struct {
	Case     Case
	Accepted bool
	// Diagnostic is the first type error, empty when Accepted.
	Diagnostic string
}

// OK reports whether the type checker agreed with the case's expectation.
func (r Result) OK() bool { return r.Accepted == r.Case.Accept }

func New(ctx context.Context, cfg Config) (*Checker, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve dir")
	}

	patterns := append([]string{ConceptsPath}, cfg.Imports...)
	slog.DebugContext(ctx, "loading packages", slog.String("dir", dir), slog.String("patterns", strings.Join(patterns, " ")))

	// Syntax for every dependency: the probes are checked concurrently
	// against these packages, so they must be fully resolved before use.
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
			packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
	}
	loaded, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}

	c := &Checker{pkgs: make(map[string]*types.Package), jobs: cfg.Jobs}
	if c.jobs <= 0 {
		c.jobs = runtime.NumCPU()
	}
	var loadErr error
	packages.Visit(loaded, nil, func(p *packages.Package) {
		if loadErr == nil && len(p.Errors) > 0 {
			loadErr = errors.Wrapf(p.Errors[0], "load %s", p.PkgPath)
		}
		if p.Types != nil {
			c.pkgs[p.PkgPath] = p.Types
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	slog.DebugContext(ctx, "packages loaded", slog.Int("count", len(c.pkgs)))
	return c, nil
}

// Import implements types.Importer over the loaded packages.
func (c *Checker) Import(path string) (*types.Package, error) {
	if path == "unsafe" {
		return types.Unsafe, nil
	}
	if p, ok := c.pkgs[path]; ok {
		return p, nil
	}
	return nil, errors.Wrap(ErrUnknownImport, path)
}

// Check type-checks the probe for one case. A type error is an answer, not
// a failure: it is reported as Accepted == false. Errors are returned only
// for cases that can't be probed at all.
func (c *Checker) Check(tc Case) (Result, error) {
	src, err := tc.Probe()
	if err != nil {
		return Result{}, err
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, tc.Name+".go", src, parser.AllErrors)
	if err != nil {
		return Result{}, errors.Wrapf(ErrInvalidCase, "%s: %v", tc.Name, err)
	}
	for _, imp := range tc.Imports {
		if _, err := c.Import(imp); err != nil {
			return Result{}, errors.Wrapf(err, "case %s", tc.Name)
		}
	}

	var typeErrs []types.Error
	conf := types.Config{
		Importer: c,
		Error: func(err error) {
			if te, ok := err.(types.Error); ok {
				typeErrs = append(typeErrs, te)
			}
		},
	}
	// Check's own error duplicates the first one passed to Error.
	_, _ = conf.Check("probe", fset, []*ast.File{f}, nil)

	res := Result{Case: tc, Accepted: len(typeErrs) == 0}
	if !res.Accepted {
		res.Diagnostic = typeErrs[0].Msg
	}
	return res, nil
}

// Run checks every case, at most Config.Jobs at a time, and returns the
// results in case order.
func (c *Checker) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)
	for i, tc := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.Check(tc)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "checked",
				slog.String("case", tc.Name),
				slog.Bool("accepted", r.Accepted),
				slog.Bool("ok", r.OK()))
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
