// Package report holds lint diagnostics and renders them.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Rule IDs.
const (
	RuleTimerPairs   = "console-time-pairs"
	RuleUnusedIgnore = "unused-ignore"
)

// Severity is the level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ParseSeverity parses "error" or "warning".
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(s)) {
	case SeverityError:
		return SeverityError, nil
	case SeverityWarning:
		return SeverityWarning, nil
	default:
		return "", fmt.Errorf("unknown severity %q (want error or warning)", s)
	}
}

func (s Severity) String() string {
	return string(s)
}

// Diagnostic is a single finding anchored at a source position.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Rule     string
	Severity Severity
	// MessageID selects the message template; Data fills its placeholders.
	MessageID string
	Message   string
	Data      map[string]string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// Sort orders diagnostics by file, line and column.
func Sort(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}

// Counts tallies diagnostics by severity.
type Counts struct {
	Errors   int
	Warnings int
}

// Count tallies diags.
func Count(diags []Diagnostic) Counts {
	var c Counts

	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			c.Errors++
		case SeverityWarning:
			c.Warnings++
		}
	}

	return c
}
