// Package linttest checks JavaScript fixtures against expectations written
// as comments, in the manner of analysistest:
//
//	console.time("a"); // want `console\.time\("a"\) has no matching`
//
// Each diagnostic must match a want pattern on its own line; each pattern
// must be matched by exactly one diagnostic.
package linttest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/mpyw/timerpairs/internal/config"
	"github.com/mpyw/timerpairs/internal/jslint"
	"github.com/mpyw/timerpairs/internal/report"
)

var wantRe = regexp.MustCompile(`//\s*want\s+(.*)$`)

// TestData returns the absolute path of the testdata directory of the
// calling test's package.
func TestData() string {
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}

	return dir
}

// Run lints every fixture file under dir/name with cfg and reports
// mismatches between diagnostics and want comments.
func Run(t testing.TB, dir, name string, cfg *config.Config) []report.Diagnostic {
	t.Helper()

	root := filepath.Join(dir, name)

	linter := jslint.New(cfg)
	diags, err := linter.Run(context.Background(), []string{root})
	if err != nil {
		t.Fatalf("lint %s: %v", root, err)
	}

	files, err := jslint.Discover([]string{root}, cfg.Extensions, cfg.Exclude)
	if err != nil {
		t.Fatalf("discover %s: %v", root, err)
	}

	wants := make(map[key][]*regexp.Regexp)
	for _, file := range files {
		if err := collectWants(file, wants); err != nil {
			t.Fatal(err)
		}
	}

	for _, d := range diags {
		k := key{file: d.File, line: d.Line}
		patterns := wants[k]

		matched := -1
		for i, re := range patterns {
			if re.MatchString(d.Message) {
				matched = i
				break
			}
		}

		if matched < 0 {
			t.Errorf("%s: unexpected diagnostic: %s", posn(k), d.Message)
			continue
		}

		wants[k] = append(patterns[:matched], patterns[matched+1:]...)
	}

	for k, patterns := range wants {
		for _, re := range patterns {
			t.Errorf("%s: no diagnostic was reported matching %#q", posn(k), re.String())
		}
	}

	return diags
}

type key struct {
	file string
	line int
}

func posn(k key) string {
	return fmt.Sprintf("%s:%d", k.file, k.line)
}

func collectWants(path string, wants map[key][]*regexp.Regexp) error {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		m := wantRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		patterns, err := parsePatterns(m[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}

		k := key{file: filepath.Clean(path), line: i + 1}
		wants[k] = append(wants[k], patterns...)
	}

	return nil
}

// parsePatterns parses a sequence of Go-style quoted regular expressions.
func parsePatterns(s string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", s, err)
		}
		s = s[len(quoted):]

		pattern, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", quoted, err)
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid want pattern: %w", err)
		}
		out = append(out, re)
	}

	return out, nil
}
