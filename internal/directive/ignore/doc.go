// Package ignore provides timerpairs:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses unmatched-timer diagnostics for a
// specific line. It works the same in JavaScript and Go sources.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	// timerpairs:ignore
//	console.time("boot") // Warning suppressed
//
//	console.timeEnd("boot") // timerpairs:ignore - started by the loader
//
// # Unused Directives
//
// A directive that suppressed nothing is itself reported, so stale
// directives do not pile up:
//
//	// timerpairs:ignore          <- "unused timerpairs:ignore directive"
//	console.log("not a timer")
//
// # Positions
//
// [Map] is generic over the position type: Go front ends store
// token.Pos (see [Build]); the JavaScript front end stores its own
// line/column positions via [Map.Add].
package ignore
