package cli

import (
	"context"
	"strings"
)

// HookFunc runs before or after a command's action. Returning a non-nil
// error stops the run immediately; errors built with the [Context] helpers
// keep their type through [App.Run].
type HookFunc func(ctx context.Context, c *Context) error

// ActionFunc carries a command's behavior. The returned [Result] reports
// whether the invocation was served; an action that only exists to host
// subcommands returns [NoAction] to signal that a bare call is incomplete.
type ActionFunc func(ctx context.Context, c *Context) (Result, error)

// Result is returned by an [ActionFunc] to report whether it handled the
// invocation.
type Result int

const (
	// Done reports that the action served the invocation. It is the zero
	// value, so a plain `return cli.Done, nil` ends a successful action.
	Done Result = iota

	// NoAction defers to deeper commands. A run whose final action result
	// is NoAction fails with a usage error, which surfaces as the help page
	// under [App.Main].
	NoAction
)

// Command is one node in the command tree. The root of the tree is the
// embedded command of an [App]; every other node is reached by name or alias
// from its parent's Commands list.
type Command struct {
	// Name is the single word used to select this command. Sibling names
	// and aliases must not overlap, which [Validate] enforces before any
	// arguments are read.
	Name string

	// Aliases are alternative names for the command, e.g. "h" for "help".
	Aliases []string

	// Usage is the one-line description shown in command listings.
	Usage string

	// ArgsUsage describes the positional arguments on the help page, e.g.
	// "<marathons> [pace]". When empty a generic placeholder is shown.
	ArgsUsage string

	// Category groups the command with others under a shared heading on
	// help pages. Commands without a category are listed first.
	Category string

	// Hidden removes the command from help pages without disabling it.
	Hidden bool

	// Flags declares the options this command owns. Values resolve from
	// the argument span between this command's token and the next
	// subcommand token.
	Flags []*Flag

	// Commands holds the nested subcommands.
	Commands []*Command

	// AllowParent runs this command's hooks even when dispatch continues
	// into a subcommand, letting a parent prepare shared state.
	AllowParent bool

	// Before runs ahead of Action once this command's flags are resolved.
	// Argument count checks such as [ArgsExact] plug in here.
	Before HookFunc

	// Action is the command's behavior. A nil Action behaves as if it
	// returned [NoAction].
	Action ActionFunc

	// After runs once Action has returned without error.
	After HookFunc
}

// Names returns the command's name followed by its aliases.
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// HasName reports whether name matches the command's name or any alias.
func (c *Command) HasName(name string) bool {
	if c.Name == name {
		return true
	}
	return contains(c.Aliases, name)
}

// index returns the position of the first token selecting this command,
// or -1 when no token does.
func (c *Command) index(tokens []string) int {
	for i, tok := range tokens {
		if c.HasName(tok) {
			return i
		}
	}
	return -1
}

// displayName renders the name with aliases for help listings, e.g.
// "help, h".
func (c *Command) displayName() string {
	return strings.Join(c.Names(), ", ")
}

// VisibleFlags returns the command's flags with hidden ones removed, in
// declaration order.
func (c *Command) VisibleFlags() []*Flag {
	var out []*Flag
	for _, f := range c.Flags {
		if !f.Hidden {
			out = append(out, f)
		}
	}
	return out
}

// VisibleCommands returns the subcommands with hidden ones removed, in
// declaration order.
func (c *Command) VisibleCommands() []*Command {
	var out []*Command
	for _, sub := range c.Commands {
		if !sub.Hidden {
			out = append(out, sub)
		}
	}
	return out
}

// VisibleCategories returns the distinct categories of the visible
// subcommands in first-use order. The anonymous category, spelled "" or "*",
// always sorts first when present, so uncategorized commands lead the help
// listing without a heading.
func (c *Command) VisibleCategories() []string {
	var out []string
	var anonymous bool
	for _, sub := range c.VisibleCommands() {
		category := normalizeCategory(sub.Category)
		if category == "" {
			anonymous = true
			continue
		}
		if !contains(out, category) {
			out = append(out, category)
		}
	}
	if anonymous {
		out = append([]string{""}, out...)
	}
	return out
}

// CommandsByCategory returns the visible subcommands belonging to the given
// category.
func (c *Command) CommandsByCategory(category string) []*Command {
	var out []*Command
	for _, sub := range c.VisibleCommands() {
		if normalizeCategory(sub.Category) == category {
			out = append(out, sub)
		}
	}
	return out
}

// findCommand searches the direct subcommands for a name or alias match.
func (c *Command) findCommand(name string) *Command {
	for _, sub := range c.Commands {
		if sub.HasName(name) {
			return sub
		}
	}
	return nil
}

func normalizeCategory(category string) string {
	if category == "*" {
		return ""
	}
	return category
}
