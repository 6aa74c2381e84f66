// Package jslint runs the timer pair rule over JavaScript files.
//
// # Overview
//
// Each file is one analysis unit: it is parsed with tree-sitter, walked
// once, and reconciled once. Nothing is shared between files, so
// [Linter.Run] lints files in parallel:
//
//	l := jslint.New(cfg, jslint.WithLogger(logger), jslint.WithJobs(4))
//	diags, err := l.Run(ctx, []string{"src"})
//
// # Walk
//
// The walk keeps an explicit ancestor stack. For every call of the shape
// object.method(...) whose method is the start or end method, the call
// is handed to the timer collector together with that stack, which is
// how the enclosing function is found. Comments are scanned for ignore
// directives in the same walk.
//
// # Diagnostics
//
// Unmatched calls become console-time-pairs diagnostics with the
// configured severity. Ignore directives that suppressed nothing become
// unused-ignore warnings.
package jslint
