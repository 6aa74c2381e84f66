// Command gotimerpairs reports Time/TimeEnd calls without a matching
// counterpart in Go code.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/timerpairs"
)

func main() {
	singlechecker.Main(timerpairs.Analyzer)
}
