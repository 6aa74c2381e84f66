// Package ignore handles timerpairs:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"maps"
	"slices"
	"strings"
)

// Directive is the comment keyword.
const Directive = "timerpairs:ignore"

// Entry tracks an ignore directive and its usage.
type Entry[P any] struct {
	pos  P // Position of the ignore comment
	used bool
}

// Map tracks ignore entries by line number.
type Map[P any] map[int]*Entry[P]

// New returns an empty map.
func New[P any]() Map[P] {
	return make(Map[P])
}

// Build scans a Go file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map[token.Pos] {
	m := New[token.Pos]()

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			m.Add(fset.Position(c.Pos()).Line, c.Pos(), c.Text)
		}
	}

	return m
}

// Add records text as a directive on line if it is one.
// It reports whether text was a directive.
func (m Map[P]) Add(line int, pos P, text string) bool {
	if !IsDirective(text) {
		return false
	}
	m[line] = &Entry[P]{pos: pos}

	return true
}

// IsDirective reports whether a comment (with its markers) is an ignore
// directive. Anything after the keyword is treated as an explanation:
//
//	// timerpairs:ignore
//	// timerpairs:ignore - measured by the caller
//	/* timerpairs:ignore */
func IsDirective(text string) bool {
	switch {
	case strings.HasPrefix(text, "//"):
		text = strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, Directive) {
		return false
	}

	rest := strings.TrimPrefix(text, Directive)

	// Reject longer keywords such as "timerpairs:ignored".
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ShouldIgnore returns true if a diagnostic on line is suppressed by a
// directive on the same line or the line before, marking it used.
func (m Map[P]) ShouldIgnore(line int) bool {
	if e := m[line]; e != nil {
		e.used = true
		return true
	}
	if e := m[line-1]; e != nil {
		e.used = true
		return true
	}

	return false
}

// Unused returns the positions of directives that suppressed nothing,
// ordered by line.
func (m Map[P]) Unused() []P {
	var unused []P

	for _, line := range slices.Sorted(maps.Keys(m)) {
		if e := m[line]; !e.used {
			unused = append(unused, e.pos)
		}
	}

	return unused
}
