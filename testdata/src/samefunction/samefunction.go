// Package samefunction contains fixtures for -scope=SameFunction.
package samefunction

// ===== SHOULD NOT REPORT =====

// [GOOD]: Pair inside one function
func goodSame() {
	console.Time("same")
	console.TimeEnd("same")
}

// [GOOD]: Pair inside one closure
func goodClosure() {
	func() {
		console.Time("closure")
		console.TimeEnd("closure")
	}()
}

// [GOOD]: Pair inside a package-level function literal
var goodHandler = func() {
	console.Time("handler")
	console.TimeEnd("handler")
}

// ===== SHOULD REPORT =====

// [BAD]: Start in a closure, end in the enclosing function
func badClosure() {
	func() {
		console.Time("nested") // want `console\.Time\("nested"\) has no matching console\.TimeEnd\("nested"\)`
	}()
	console.TimeEnd("nested") // want `console\.TimeEnd\("nested"\) has no matching console\.Time\("nested"\)`
}

// [BAD]: Deferred end is its own function
func badDefer() {
	console.Time("deferred") // want `console\.Time\("deferred"\) has no matching`
	defer func() {
		console.TimeEnd("deferred") // want `console\.TimeEnd\("deferred"\) has no matching`
	}()
}

// [BAD]: Sibling functions
func badOne() {
	console.Time("sibling") // want `console\.Time\("sibling"\) has no matching`
}

func badTwo() {
	console.TimeEnd("sibling") // want `console\.TimeEnd\("sibling"\) has no matching`
}
