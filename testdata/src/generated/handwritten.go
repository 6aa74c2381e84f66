package generated

// [GOOD]: Generated files are skipped entirely
func goodHandwritten() {
	console.Time("handwritten")
	console.TimeEnd("handwritten")
}

// [BAD]: Files are separate units
func badHandwrittenEnd() {
	console.TimeEnd("generated") // want `console\.TimeEnd\("generated"\) has no matching`
}
