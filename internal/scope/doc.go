// Package scope provides matching-boundary resolution for timer calls.
//
// # Overview
//
// Two timer calls can only pair when they share a scope key. The key is
// the function node returned by [Resolve], or "no key" for file scope.
//
// # Modes
//
//	┌──────────────────┬──────────────────────────────────────────────┐
//	│ Mode             │ Boundary                                     │
//	├──────────────────┼──────────────────────────────────────────────┤
//	│ File             │ whole file, no walking                       │
//	│ SameFunction     │ nearest enclosing function                   │
//	│ SameRootFunction │ outermost enclosing function                 │
//	└──────────────────┴──────────────────────────────────────────────┘
//
// A call with no enclosing function resolves to file scope in every
// mode, so top-level calls stay comparable with each other:
//
//	function f() {
//	    console.time("a")       // SameFunction: f
//	    const g = () => {
//	        console.timeEnd("a") // SameFunction: g, SameRootFunction: f
//	    }
//	}
//	console.time("b")           // file scope in every mode
//
// # Ancestor Stacks
//
// [Resolve] never follows parent links. Callers pass the ancestor stack
// they maintain while walking, the way inspector.WithStack does:
//
//	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
//	    fn, ok := scope.Resolve(mode, stack, isFuncNode) // isFuncNode(n, parent ast.Node) bool
//	    ...
//	})
package scope
