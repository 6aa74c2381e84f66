// Package ignore contains fixtures for timerpairs:ignore directives.
package ignore

import "fmt"

func ignored() {
	//timerpairs:ignore - started by the caller
	console.TimeEnd("boot")

	console.Time("inline") // timerpairs:ignore

	/* timerpairs:ignore */
	console.Time("block")

	// timerpairs:ignore // want `unused timerpairs:ignore directive`
	fmt.Println("not a timer")

	// timerpairs:ignored is not a directive
	console.Time("reported") // want `console\.Time\("reported"\) has no matching`
}
