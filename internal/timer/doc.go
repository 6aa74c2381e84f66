// Package timer collects start/end timer calls and reconciles them into pairs.
//
// # Architecture Overview
//
// One rule, two syntax trees. The rule itself never sees a syntax node; it
// works on [Site] values supplied by a front end:
//
//	  +-------------------+            +---------------------+
//	  | cmd/timerpairs    |            | cmd/gotimerpairs    |
//	  | (cobra + viper)   |            | (singlechecker)     |
//	  +---------+---------+            +----------+----------+
//	            |                                 |
//	  +---------v---------+            +----------v----------+
//	  |      jslint       |            |  timerpairs.Analyzer |
//	  | (file walk, jobs) |            |  (go/analysis pass)  |
//	  +---------+---------+            +----------+----------+
//	            |                                 |
//	  +---------v---------+                       |
//	  |      jsast        |  tree-sitter          |  go/ast
//	  +---------+---------+                       |
//	            +----------------+----------------+
//	                             |
//	                    +--------v---------+
//	                    |      timer       |  collect + reconcile
//	                    +--------+---------+
//	                             |
//	        +--------------------+--------------------+
//	        |                    |                    |
//	   +----v-----+     +--------v---------+    +-----v-----+
//	   |  scope   |     | directive/ignore |    |  report   |
//	   +----------+     +------------------+    +-----------+
//
// # Execution Flow
//
//  1. A front end creates one [Collector] per file
//  2. It walks the file once, keeping the ancestor stack, and hands every
//     object.method(...) call naming the start or end method to
//     [Collector.Visit]
//  3. The site resolves its scope key with [scope.Resolve] over that stack
//  4. [Collector.Unmatched] yields calls without a counterpart
//  5. Calls on lines covered by an ignore directive are dropped, and the
//     rest are reported
//
// # Usage
//
// Analysis of one unit (one file) happens in two steps:
//
//	collector := timer.NewCollector(opts)
//	walk(file, func(site timer.Site) { collector.Visit(site) })
//	for _, call := range collector.Unmatched() {
//	    report(call.Node, call.Message(collector.Methods()))
//	}
//
// Front ends adapt their syntax nodes to [Site]; the collector does not
// know which language it is looking at.
//
// # Collection
//
// [Collector.Visit] skips, without reporting:
//
//   - calls whose method is neither the start nor the end method
//   - calls with no arguments
//   - calls whose receiver is not a bare identifier listed in ObjectNames
//
// Every other call becomes a [Call]. The label is the literal value of the
// first argument when it has one, else its source text.
//
// # Pairing
//
// Two distinct calls pair when scope, static-ness, label and receiver are
// equal and the edges differ. [Unmatched] keeps every call without a
// partner. A partner may be shared:
//
//	console.time("a")    // pairs with the timeEnd
//	console.time("a")    // pairs with the same timeEnd
//	console.timeEnd("a") // pairs with either time
//
// A literal label never pairs with a dynamic one, even when the texts
// look alike:
//
//	console.time("x")
//	console.timeEnd(x) // reported
//
// [scope.Resolve]: github.com/mpyw/timerpairs/internal/scope.Resolve
package timer
