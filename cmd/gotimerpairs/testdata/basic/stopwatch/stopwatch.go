// Package stopwatch measures named spans.
package stopwatch

import (
	"fmt"
	"time"
)

type Stopwatch struct {
	started map[string]time.Time
}

func New() *Stopwatch {
	return &Stopwatch{started: make(map[string]time.Time)}
}

func (s *Stopwatch) Time(label string) {
	s.started[label] = time.Now()
}

func (s *Stopwatch) TimeEnd(label string) {
	fmt.Printf("%s: %v\n", label, time.Since(s.started[label]))
	delete(s.started, label)
}
