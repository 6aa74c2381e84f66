// Package timerpairs provides a go/analysis based analyzer that reports
// timer start calls without a matching end call, and end calls without a
// matching start call.
package timerpairs

import (
	"errors"
	"flag"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/timerpairs/internal/directive/ignore"
	"github.com/mpyw/timerpairs/internal/scope"
	"github.com/mpyw/timerpairs/internal/timer"
)

// Flags for the analyzer.
var (
	objectNames string
	scopeMode   = scope.File
	startMethod string
	endMethod   string
)

func init() {
	Analyzer.Flags.StringVar(&objectNames, "object-names", "console",
		"comma-separated list of receiver names whose timer calls are checked")
	Analyzer.Flags.Var(&scopeMode, "scope",
		"matching boundary: File, SameFunction or SameRootFunction")
	Analyzer.Flags.StringVar(&startMethod, "start-method", "Time", "name of the method that starts a timer")
	Analyzer.Flags.StringVar(&endMethod, "end-method", "TimeEnd", "name of the method that ends a timer")
}

// Analyzer is the main analyzer for timerpairs.
var Analyzer = &analysis.Analyzer{
	Name:     "timerpairs",
	Doc:      "checks that every timer start call has a matching end call and vice versa",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	opts := options()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	units := buildUnits(pass, opts)

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		u := units[stack[0].(*ast.File)]
		if u == nil {
			return false
		}

		call := n.(*ast.CallExpr)
		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || !u.collector.IsTimerMethod(sel.Sel.Name) {
			return true
		}

		u.collector.Visit(&site{unit: u, call: call, sel: sel, stack: stack})

		return true
	})

	for _, file := range pass.Files {
		if u := units[file]; u != nil {
			u.report(pass)
		}
	}

	return nil, nil
}

func options() timer.Options {
	var names []string
	for name := range strings.SplitSeq(objectNames, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return timer.Options{
		ObjectNames: names,
		Scope:       scopeMode,
		Methods:     timer.Methods{Start: startMethod, End: endMethod},
	}
}

// unit is one Go file: its own collector and ignore directives.
type unit struct {
	file      *ast.File
	tokFile   *token.File
	src       []byte
	collector *timer.Collector
	ignores   ignore.Map[token.Pos]
}

// buildUnits creates a unit per file. Generated files are always skipped.
func buildUnits(pass *analysis.Pass, opts timer.Options) map[*ast.File]*unit {
	units := make(map[*ast.File]*unit, len(pass.Files))

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}

		u := &unit{
			file:      file,
			tokFile:   pass.Fset.File(file.Pos()),
			collector: timer.NewCollector(opts),
			ignores:   ignore.Build(pass.Fset, file),
		}

		// Without the source, labels fall back to the printed expression.
		if u.tokFile != nil && pass.ReadFile != nil {
			if src, err := pass.ReadFile(u.tokFile.Name()); err == nil && len(src) == u.tokFile.Size() {
				u.src = src
			}
		}

		units[file] = u
	}

	return units
}

// text returns the verbatim source of expr.
func (u *unit) text(expr ast.Expr) string {
	if u.src == nil {
		return types.ExprString(expr)
	}

	return string(u.src[u.tokFile.Offset(expr.Pos()):u.tokFile.Offset(expr.End())])
}

func (u *unit) report(pass *analysis.Pass) {
	methods := u.collector.Methods()

	for _, call := range u.collector.Unmatched() {
		node := call.Node.(*ast.CallExpr)
		if u.ignores.ShouldIgnore(pass.Fset.Position(node.Pos()).Line) {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      node.Pos(),
			End:      node.End(),
			Category: call.MessageID(),
			Message:  call.Message(methods),
		})
	}

	for _, pos := range u.ignores.Unused() {
		pass.Reportf(pos, "unused %s directive", ignore.Directive)
	}
}

// site adapts a Go selector call to timer.Site. stack is only valid for
// the duration of the inspector callback that built the site.
type site struct {
	unit  *unit
	call  *ast.CallExpr
	sel   *ast.SelectorExpr
	stack []ast.Node
}

func (s *site) Method() string {
	return s.sel.Sel.Name
}

func (s *site) Receiver() (string, bool) {
	ident, ok := ast.Unparen(s.sel.X).(*ast.Ident)
	if !ok {
		return "", false
	}

	return ident.Name, true
}

func (s *site) NumArgs() int {
	return len(s.call.Args)
}

func (s *site) ArgSource() string {
	return s.unit.text(ast.Unparen(s.call.Args[0]))
}

func (s *site) ArgLiteral() (string, bool) {
	return stringValue(ast.Unparen(s.call.Args[0]))
}

func (s *site) Scope(mode scope.Mode) any {
	fn, ok := scope.Resolve(mode, s.stack, isFunc)
	if !ok {
		return nil
	}

	return fn
}

func (s *site) Node() any {
	return s.call
}

// stringValue returns the value of a string literal. Interpreted and raw
// string literals with the same value are equal.
func stringValue(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	v, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return v, true
}

func isFunc(n, _ ast.Node) bool {
	switch n.(type) {
	case *ast.FuncDecl, *ast.FuncLit:
		return true
	}

	return false
}
