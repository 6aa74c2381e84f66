package main

import "fmt"

type stopwatch struct{}

func (stopwatch) Time(label string) { fmt.Println("start", label) }

func (stopwatch) TimeEnd(label string) { fmt.Println("end", label) }

var console stopwatch

func main() {
	console.Time(`main`)
	defer console.TimeEnd("main")
}
