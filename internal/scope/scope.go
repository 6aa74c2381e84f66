// Package scope provides matching-boundary resolution for timer calls.
package scope

import (
	"errors"
	"fmt"
)

// Mode selects the boundary within which two timer calls may pair.
type Mode string

// Valid modes.
const (
	File             Mode = "File"
	SameFunction     Mode = "SameFunction"
	SameRootFunction Mode = "SameRootFunction"
)

// ErrUnknownMode is returned by [ParseMode] for unrecognized names.
var ErrUnknownMode = errors.New("unknown scope mode")

// AllModes returns all valid modes.
func AllModes() []Mode {
	return []Mode{File, SameFunction, SameRootFunction}
}

// ParseMode parses a mode name. Names are case-sensitive.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w %q (want one of File, SameFunction, SameRootFunction)", ErrUnknownMode, s)
}

// String implements flag.Value.
func (m *Mode) String() string {
	if m == nil || *m == "" {
		return string(File)
	}

	return string(*m)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "scope"
}

// Resolve returns the function node that bounds matching for a call site.
//
// stack holds the ancestors of the call site, outermost first; the call
// itself may be the last element. isFunc receives each candidate with the
// node enclosing it on the stack (the zero N for the outermost entry). ok is
// false when the call is bounded by the whole file, either because mode is
// File or because no function-like ancestor exists.
func Resolve[N any](mode Mode, stack []N, isFunc func(n, parent N) bool) (fn N, ok bool) {
	switch mode {
	case SameFunction:
		for i := len(stack) - 1; i >= 0; i-- {
			if isFunc(stack[i], parentAt(stack, i)) {
				return stack[i], true
			}
		}
	case SameRootFunction:
		for i := range stack {
			if isFunc(stack[i], parentAt(stack, i)) {
				return stack[i], true
			}
		}
	}

	return fn, false
}

func parentAt[N any](stack []N, i int) N {
	var parent N
	if i > 0 {
		parent = stack[i-1]
	}

	return parent
}
