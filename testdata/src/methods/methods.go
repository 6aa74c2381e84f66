// Package methods contains fixtures for -object-names=prof
// -start-method=Start -end-method=Stop.
package methods

// [GOOD]: Custom pair
func goodPair() {
	prof.Start("a")
	prof.Stop("a")
}

// [GOOD]: Default method names are not checked
func goodDefaults() {
	prof.Time("ignored")
}

// [BAD]: Custom start without stop
func badStart() {
	prof.Start("b") // want `prof\.Start\("b"\) has no matching prof\.Stop\("b"\)`
}
