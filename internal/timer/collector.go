package timer

import (
	"errors"
	"fmt"

	"github.com/mpyw/timerpairs/internal/scope"
)

// Options configures a Collector.
type Options struct {
	ObjectNames []string
	Scope       scope.Mode
	Methods     Methods
}

// ErrInvalidOptions is returned for unusable Options.
var ErrInvalidOptions = errors.New("invalid timer options")

// DefaultOptions returns options checking console.time/console.timeEnd
// across the whole file.
func DefaultOptions() Options {
	return Options{
		ObjectNames: []string{"console"},
		Scope:       scope.File,
		Methods:     DefaultMethods,
	}
}

// Validate checks that the method names are usable.
func (o Options) Validate() error {
	if o.Methods.Start == "" || o.Methods.End == "" {
		return fmt.Errorf("%w: start and end method names must be set", ErrInvalidOptions)
	}
	if o.Methods.Start == o.Methods.End {
		return fmt.Errorf("%w: start and end methods are both %q", ErrInvalidOptions, o.Methods.Start)
	}
	if _, err := scope.ParseMode(string(o.Scope)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// Collector accumulates the timer calls of one analysis unit.
// It must not be shared across units.
type Collector struct {
	objects map[string]bool
	mode    scope.Mode
	methods Methods
	calls   []*Call
}

// NewCollector creates an empty collector.
func NewCollector(opts Options) *Collector {
	objects := make(map[string]bool, len(opts.ObjectNames))
	for _, name := range opts.ObjectNames {
		objects[name] = true
	}

	mode := opts.Scope
	if mode == "" {
		mode = scope.File
	}

	return &Collector{
		objects: objects,
		mode:    mode,
		methods: opts.Methods,
	}
}

// IsTimerMethod reports whether name is the start or end method.
func (c *Collector) IsTimerMethod(name string) bool {
	return name == c.methods.Start || name == c.methods.End
}

// Visit records site if it is a timer call on a checked receiver.
// It reports whether a record was added.
func (c *Collector) Visit(site Site) bool {
	var edge Edge

	switch site.Method() {
	case c.methods.Start:
		edge = Start
	case c.methods.End:
		edge = End
	default:
		return false
	}

	// Calls without a label have nothing to match on.
	if site.NumArgs() == 0 {
		return false
	}

	object, ok := site.Receiver()
	if !ok || !c.objects[object] {
		return false
	}

	source := site.ArgSource()
	label, static := site.ArgLiteral()
	if !static {
		label = source
	}

	c.calls = append(c.calls, &Call{
		Label:  label,
		Source: source,
		Static: static,
		Object: object,
		Edge:   edge,
		Scope:  site.Scope(c.mode),
		Node:   site.Node(),
	})

	return true
}

// Calls returns the recorded calls in recording order.
func (c *Collector) Calls() []*Call {
	return c.calls
}

// Methods returns the configured method names.
func (c *Collector) Methods() Methods {
	return c.methods
}

// Unmatched returns the recorded calls that have no counterpart.
func (c *Collector) Unmatched() []*Call {
	return Unmatched(c.calls)
}
