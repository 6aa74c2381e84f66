// Package samerootfunction contains fixtures for -scope=SameRootFunction.
package samerootfunction

// ===== SHOULD NOT REPORT =====

// [GOOD]: Deferred closure shares the root function
func goodDefer() {
	console.Time("deferred")
	defer func() {
		console.TimeEnd("deferred")
	}()
}

// [GOOD]: Deeply nested closures share the root function
func goodDeep() {
	func() {
		func() {
			console.Time("deep")
		}()
	}()
	console.TimeEnd("deep")
}

// ===== SHOULD REPORT =====

// [BAD]: Sibling functions
func badOne() {
	console.Time("sibling") // want `console\.Time\("sibling"\) has no matching`
}

func badTwo() {
	console.TimeEnd("sibling") // want `console\.TimeEnd\("sibling"\) has no matching`
}

// [BAD]: A package-level function literal is its own root
var badHandler = func() {
	console.Time("handler") // want `console\.Time\("handler"\) has no matching`
}

func badUsesHandler() {
	badHandler()
	console.TimeEnd("handler") // want `console\.TimeEnd\("handler"\) has no matching`
}
