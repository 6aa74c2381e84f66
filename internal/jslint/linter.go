package jslint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/sync/errgroup"

	"github.com/mpyw/timerpairs/internal/config"
	"github.com/mpyw/timerpairs/internal/directive/ignore"
	"github.com/mpyw/timerpairs/internal/jsast"
	"github.com/mpyw/timerpairs/internal/report"
	"github.com/mpyw/timerpairs/internal/timer"
)

// ErrFileTooLarge is returned for files above the size limit.
var ErrFileTooLarge = errors.New("file too large")

const defaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Linter lints JavaScript sources. It is safe for concurrent use; every
// file gets its own collector.
type Linter struct {
	cfg         *config.Config
	logger      *slog.Logger
	jobs        int
	maxFileSize int
}

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// WithJobs bounds the number of files linted at once. Values below 1 mean
// GOMAXPROCS.
func WithJobs(n int) Option {
	return func(l *Linter) {
		l.jobs = n
	}
}

// WithMaxFileSize sets the largest file size in bytes that will be parsed.
func WithMaxFileSize(size int) Option {
	return func(l *Linter) {
		l.maxFileSize = size
	}
}

// New creates a Linter for cfg. A nil cfg means the defaults.
func New(cfg *config.Config, opts ...Option) *Linter {
	if cfg == nil {
		cfg = config.New()
	}

	l := &Linter{
		cfg:         cfg,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxFileSize: defaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.jobs < 1 {
		l.jobs = runtime.GOMAXPROCS(0)
	}

	return l
}

// Run lints every file found under paths and returns the diagnostics
// sorted by file and position.
func (l *Linter) Run(ctx context.Context, paths []string) ([]report.Diagnostic, error) {
	files, err := Discover(paths, l.cfg.Extensions, l.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("discovered files", "count", len(files), "jobs", l.jobs)

	results := make([][]report.Diagnostic, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.jobs)

	for i, path := range files {
		g.Go(func() error {
			diags, err := l.LintFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []report.Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	report.Sort(all)

	return all, nil
}

// LintFile reads and lints one file.
func (l *Linter) LintFile(ctx context.Context, path string) ([]report.Diagnostic, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > int64(l.maxFileSize) {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrFileTooLarge)
	}

	src, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return l.LintSource(ctx, path, src)
}

// LintSource lints src as a single analysis unit named path.
func (l *Linter) LintSource(ctx context.Context, path string, src []byte) ([]report.Diagnostic, error) {
	if len(src) > l.maxFileSize {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, len(src), ErrFileTooLarge)
	}

	file, err := jsast.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if file.HasSyntaxErrors() {
		l.logger.Warn("syntax errors in file, results may be incomplete", "path", path)
	}

	collector := timer.NewCollector(l.cfg.Options())
	ignores := ignore.New[jsast.Position]()

	jsast.Walk(file.Root, func(n *sitter.Node, stack []*sitter.Node) bool {
		if n.Type() == jsast.NodeComment {
			pos := file.Position(n)
			ignores.Add(pos.Line, pos, file.Text(n))
			return false
		}

		if call, ok := jsast.AsMemberCall(n, src); ok && collector.IsTimerMethod(call.Property) {
			collector.Visit(&site{file: file, call: call, stack: stack})
		}

		return true
	})

	var diags []report.Diagnostic

	unmatched := collector.Unmatched()
	methods := collector.Methods()

	for _, call := range unmatched {
		pos := file.Position(call.Node.(*sitter.Node))
		if ignores.ShouldIgnore(pos.Line) {
			continue
		}

		diags = append(diags, report.Diagnostic{
			File:      path,
			Line:      pos.Line,
			Column:    pos.Column,
			Rule:      report.RuleTimerPairs,
			Severity:  l.cfg.Severity,
			MessageID: call.MessageID(),
			Message:   call.Message(methods),
			Data:      call.Data(methods),
		})
	}

	for _, pos := range ignores.Unused() {
		diags = append(diags, report.Diagnostic{
			File:     path,
			Line:     pos.Line,
			Column:   pos.Column,
			Rule:     report.RuleUnusedIgnore,
			Severity: report.SeverityWarning,
			Message:  "unused " + ignore.Directive + " directive",
		})
	}

	report.Sort(diags)

	l.logger.Debug("linted file",
		"path", path,
		"calls", len(collector.Calls()),
		"unmatched", len(unmatched),
		"reported", len(diags),
	)

	return diags, nil
}
