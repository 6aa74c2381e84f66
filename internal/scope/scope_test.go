package scope_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/timerpairs/internal/scope"
)

// Nodes are named "fn:<name>" when function-like, and "expr:<name>" when
// function-like only directly under an "export" node.
func isFunc(n, parent string) bool {
	return strings.HasPrefix(n, "fn:") || strings.HasPrefix(n, "expr:") && parent == "export"
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mode   scope.Mode
		stack  []string
		want   string
		wantOk bool
	}{
		{
			name:  "file ignores functions",
			mode:  scope.File,
			stack: []string{"program", "fn:f", "call"},
		},
		{
			name:   "same function picks nearest",
			mode:   scope.SameFunction,
			stack:  []string{"program", "fn:outer", "block", "fn:inner", "call"},
			want:   "fn:inner",
			wantOk: true,
		},
		{
			name:   "same root function picks outermost",
			mode:   scope.SameRootFunction,
			stack:  []string{"program", "fn:outer", "block", "fn:inner", "call"},
			want:   "fn:outer",
			wantOk: true,
		},
		{
			name:  "same function at top level is file scope",
			mode:  scope.SameFunction,
			stack: []string{"program", "statement", "call"},
		},
		{
			name:  "same root function at top level is file scope",
			mode:  scope.SameRootFunction,
			stack: []string{"program", "call"},
		},
		{
			name:  "empty stack",
			mode:  scope.SameFunction,
			stack: nil,
		},
		{
			name:   "parent decides for expressions",
			mode:   scope.SameFunction,
			stack:  []string{"program", "export", "expr:default", "block", "expr:callback", "call"},
			want:   "expr:default",
			wantOk: true,
		},
		{
			name:  "outermost entry has no parent",
			mode:  scope.SameRootFunction,
			stack: []string{"expr:root", "call"},
		},
		{
			name:   "single function both modes agree",
			mode:   scope.SameRootFunction,
			stack:  []string{"program", "fn:only", "call"},
			want:   "fn:only",
			wantOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := scope.Resolve(tt.mode, tt.stack, isFunc)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FileDoesNotWalk(t *testing.T) {
	t.Parallel()

	calls := 0
	_, ok := scope.Resolve(scope.File, []string{"fn:a", "fn:b"}, func(string, string) bool {
		calls++
		return true
	})
	assert.False(t, ok)
	assert.Zero(t, calls, "File mode should not inspect ancestors")
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range scope.AllModes() {
		got, err := scope.ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := scope.ParseMode("samefunction")
	require.ErrorIs(t, err, scope.ErrUnknownMode)

	_, err = scope.ParseMode("")
	require.ErrorIs(t, err, scope.ErrUnknownMode)
}

func TestMode_FlagValue(t *testing.T) {
	t.Parallel()

	var m scope.Mode
	assert.Equal(t, "File", m.String(), "zero value prints as File")

	require.NoError(t, m.Set("SameRootFunction"))
	assert.Equal(t, scope.SameRootFunction, m)
	assert.Equal(t, "scope", m.Type())

	require.Error(t, m.Set("Global"))
	assert.Equal(t, scope.SameRootFunction, m, "failed Set keeps previous value")
}
