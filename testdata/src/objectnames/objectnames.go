// Package objectnames contains fixtures for -object-names=perf,trace.
package objectnames

// [GOOD]: console is not checked
func goodConsole() {
	console.Time("a")
}

// [GOOD]: Pairs on each listed receiver
func goodListed() {
	perf.Time("c")
	perf.TimeEnd("c")
	trace.Time("c")
	trace.TimeEnd("c")
}

// [BAD]: perf start without end
func badPerf() {
	perf.Time("b") // want `perf\.Time\("b"\) has no matching perf\.TimeEnd\("b"\)`
}

// [BAD]: Receivers must agree
func badMixed() {
	perf.Time("mixed")     // want `perf\.Time\("mixed"\) has no matching perf\.TimeEnd\("mixed"\)`
	trace.TimeEnd("mixed") // want `trace\.TimeEnd\("mixed"\) has no matching trace\.Time\("mixed"\)`
}
