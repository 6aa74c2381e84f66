package main

import "example.com/basic/stopwatch"

var console = stopwatch.New()

func main() {
	console.Time("main")
	defer console.TimeEnd("main")

	load()
}

func load() {
	console.Time("load")
}
