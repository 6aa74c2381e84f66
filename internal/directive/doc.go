// Package directive groups comment directive parsing for timerpairs.
//
//	directive/
//	└── ignore/    # timerpairs:ignore
//
// # Directive Format
//
// Directives are line or block comments starting with the keyword.
// Anything after the keyword is free text:
//
//	// timerpairs:ignore
//	//timerpairs:ignore - started in the bootstrap script
//	/* timerpairs:ignore */
//
// See [ignore] package for details.
//
// [ignore]: github.com/mpyw/timerpairs/internal/directive/ignore
package directive
