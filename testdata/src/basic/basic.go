// Package basic contains fixtures for the default configuration: console
// receivers, Time/TimeEnd methods and File scope. Every call in the file is
// comparable with every other, so labels are unique per case.
package basic

import "fmt"

// ===== SHOULD NOT REPORT =====

// [GOOD]: Matched pair
func goodPair() {
	console.Time("a")
	console.TimeEnd("a")
}

// [GOOD]: End before start
func goodReversed() {
	console.TimeEnd("reversed")
	console.Time("reversed")
}

// [GOOD]: Duplicate starts share one end
func goodDuplicate() {
	console.Time("dup")
	console.Time("dup")
	console.TimeEnd("dup")
}

// [GOOD]: Pair split across functions
func goodStartLoad() {
	console.Time("load")
}

func goodEndLoad() {
	console.TimeEnd("load")
}

// [GOOD]: Raw and interpreted literals with the same value
func goodRaw() {
	console.Time(`raw`)
	console.TimeEnd("raw")
}

// [GOOD]: Escapes compare by value
func goodEscape() {
	console.Time("\x41BC")
	console.TimeEnd("ABC")
}

// [GOOD]: Dynamic labels pair by source text
func goodDynamic(label string) {
	console.Time(label)
	console.TimeEnd(label)
}

// [GOOD]: Dynamic expressions pair by source text
func goodSprint(id int) {
	console.Time(fmt.Sprint("req-", id))
	console.TimeEnd(fmt.Sprint("req-", id))
}

// [GOOD]: Zero-argument calls are invisible
func goodNoArgs() {
	console.Time()
	console.TimeEnd()
}

// [GOOD]: Other receivers are not checked
func goodOtherReceiver() {
	perf.Time("other")
	holder.console.Time("nested")
}

// [GOOD]: Method values are not timer calls
func goodMethodValue() {
	f := console.Time
	f("value")
}

// [GOOD]: Parenthesized callee
func goodParen() {
	(console.Time)("paren")
	console.TimeEnd("paren")
}

// [GOOD]: Parentheses around the receiver and the label are dropped
func goodParenOperands(a struct{ b string }) {
	(console).Time(a.b)
	console.TimeEnd((a.b))
}

// ===== SHOULD REPORT =====

// [BAD]: Start without end
func badStart() {
	console.Time("lonely") // want `console\.Time\("lonely"\) has no matching console\.TimeEnd\("lonely"\)`
}

// [BAD]: End without start
func badEnd() {
	console.TimeEnd("orphan") // want `console\.TimeEnd\("orphan"\) has no matching console\.Time\("orphan"\)`
}

// [BAD]: Static label never pairs with an identifier
func badStaticVsDynamic(x string) {
	console.Time("x")  // want `console\.Time\("x"\) has no matching console\.TimeEnd\("x"\)`
	console.TimeEnd(x) // want `console\.TimeEnd\(x\) has no matching console\.Time\(x\)`
}

// [BAD]: Dynamic labels compare verbatim text
func badVerbatim(s string) {
	console.Time(s[0:1])   // want `console\.Time\(s\[0:1\]\) has no matching`
	console.TimeEnd(s[:1]) // want `console\.TimeEnd\(s\[:1\]\) has no matching`
}

// [BAD]: Parenthesized receiver
func badParenReceiver() {
	(console).Time("paren-receiver") // want `console\.Time\("paren-receiver"\) has no matching`
}

// [BAD]: Message keeps the literal as written
func badRawMessage() {
	console.Time(`single`) // want "console\\.Time\\(`single`\\) has no matching console\\.TimeEnd\\(`single`\\)"
}

// [BAD]: Only the first argument is the label
func badExtra() {
	console.Time("first", "second") // want `console\.Time\("first"\) has no matching`
}

// [BAD]: Unmatched inside a closure
func badClosure() {
	func() {
		console.TimeEnd("closure") // want `console\.TimeEnd\("closure"\) has no matching`
	}()
}
