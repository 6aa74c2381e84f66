// Package timer collects start/end timer calls and reconciles them into pairs.
package timer

import (
	"fmt"

	"github.com/mpyw/timerpairs/internal/scope"
)

// Edge tells which half of a pair a call represents.
type Edge int

const (
	Start Edge = iota
	End
)

func (e Edge) String() string {
	switch e {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Message IDs for unmatched calls.
const (
	MissingEnd   = "missingEnd"
	MissingStart = "missingStart"
)

// Call is a recorded timer call. It is read-only once recorded.
type Call struct {
	// Label is the literal value when Static, else the argument's source text.
	Label string
	// Source is the verbatim source text of the first argument.
	Source string
	Static bool
	Object string
	Edge   Edge
	// Scope is compared with == only; nil means file scope.
	Scope any
	// Node anchors diagnostics.
	Node any
}

// Pairs reports whether c and other form a start/end pair.
// A call never pairs with itself.
func (c *Call) Pairs(other *Call) bool {
	return c != other &&
		c.Scope == other.Scope &&
		c.Edge != other.Edge &&
		c.Static == other.Static &&
		c.Label == other.Label &&
		c.Object == other.Object
}

// Methods names the start and end methods of a timer pair.
type Methods struct {
	Start string
	End   string
}

// DefaultMethods are the console.time/console.timeEnd names.
var DefaultMethods = Methods{Start: "time", End: "timeEnd"}

// MessageID returns MissingEnd for start calls and MissingStart for end calls.
func (c *Call) MessageID() string {
	if c.Edge == Start {
		return MissingEnd
	}

	return MissingStart
}

// Message formats the diagnostic for c being unmatched.
func (c *Call) Message(m Methods) string {
	own, want := m.Start, m.End
	if c.Edge == End {
		own, want = m.End, m.Start
	}

	return fmt.Sprintf("%s.%s(%s) has no matching %s.%s(%s)", c.Object, own, c.Source, c.Object, want, c.Source)
}

// Data returns the message substitutions.
func (c *Call) Data(m Methods) map[string]string {
	return map[string]string{
		"objectName":      c.Object,
		"labelSourceCode": c.Source,
		"startMethod":     m.Start,
		"endMethod":       m.End,
	}
}

// Site is a call expression whose callee is a member access, as seen by a
// front end.
type Site interface {
	// Method is the property name of the callee.
	Method() string
	// Receiver is the callee's object name. ok is false unless the object
	// is a bare identifier.
	Receiver() (name string, ok bool)
	NumArgs() int
	// ArgSource returns the verbatim text of the first argument.
	ArgSource() string
	// ArgLiteral returns the compile-time string value of the first argument.
	ArgLiteral() (string, bool)
	// Scope returns the scope key for mode; nil means file scope.
	Scope(mode scope.Mode) any
	Node() any
}
