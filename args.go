package cli

import (
	"context"
	"fmt"
)

// Args holds the positional arguments left over at one command level after
// flag resolution.
type Args []string

// Get returns the argument at position n, or the empty string when n is out
// of range.
func (a Args) Get(n int) string {
	if n >= 0 && n < len(a) {
		return a[n]
	}
	return ""
}

// First returns the first argument, or the empty string when there are none.
func (a Args) First() string {
	return a.Get(0)
}

// Tail returns every argument after the first. With fewer than two arguments
// the receiver is returned unchanged.
func (a Args) Tail() Args {
	if len(a) >= 2 {
		return a[1:]
	}
	return a
}

// Present reports whether any arguments remain.
func (a Args) Present() bool {
	return len(a) > 0
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// Swap exchanges the arguments at the two given positions.
func (a Args) Swap(from, to int) error {
	if from < 0 || from >= len(a) || to < 0 || to >= len(a) {
		return fmt.Errorf("index out of range")
	}
	a[from], a[to] = a[to], a[from]
	return nil
}

// ArgsRange returns a Before hook that bounds the number of positional
// arguments a command accepts. A negative min forbids arguments entirely and
// max <= 0 leaves the upper bound open.
func ArgsRange(min, max int) HookFunc {
	return func(_ context.Context, c *Context) error {
		n := len(c.Args())
		name := c.Command().Name
		switch {
		case min < 0 && n > 0:
			return c.UsageErrorf("%q does not take any arguments", name)
		case min > 0 && min == max && n != min:
			return c.UsageErrorf("%q must have exactly %d arguments", name, min)
		case min > 0 && n < min:
			return c.UsageErrorf("%q must have at least %d arguments", name, min)
		case max > 0 && n > max:
			return c.UsageErrorf("%q can have at maximum %d arguments", name, max)
		}
		return nil
	}
}

// ArgsExact returns a Before hook that requires exactly n positional
// arguments.
func ArgsExact(n int) HookFunc {
	return ArgsRange(n, n)
}

// ArgsNone returns a Before hook that rejects any positional arguments.
func ArgsNone() HookFunc {
	return ArgsRange(-1, 0)
}
