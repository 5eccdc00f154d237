package cli

import "fmt"

// FlagMap holds resolved flag values keyed by primary flag name.
type FlagMap map[string]any

// Context records one level of a dispatch. Hooks and actions receive the
// context of the command they run for, linked to the contexts of every
// ancestor level, and read flag values and positional arguments from it.
//
// Flag lookups accept any declared name; aliases are normalized to the
// flag's primary name before the value maps are consulted. Local lookups
// consult the current command's flags, global lookups the root level's
// flags, which every context of a run shares by reference.
type Context struct {
	app     *App
	command *Command
	parent  *Context

	globalFlags FlagMap
	localFlags  FlagMap
	args        Args
}

func newContext(app *App, cmd *Command, parent *Context, global, local FlagMap, args Args) *Context {
	return &Context{
		app:         app,
		command:     cmd,
		parent:      parent,
		globalFlags: global,
		localFlags:  local,
		args:        args,
	}
}

// App returns the application this dispatch belongs to.
func (c *Context) App() *App {
	return c.app
}

// Command returns the command this context was built for.
func (c *Context) Command() *Command {
	return c.command
}

// Args returns the positional arguments left at this level after flag
// resolution.
func (c *Context) Args() Args {
	return c.args
}

// Parent returns the context of the level above this one.
//
// Calling Parent on the root context panics. A hook that reaches past the
// root holds a wrong assumption about the shape of the tree, and it is
// better to fail loud and early than to hand back a context that was never
// part of the run.
func (c *Context) Parent() *Context {
	if c.parent == nil {
		panic("internal error: root context has no parent")
	}
	return c.parent
}

// Get returns the local flag value stored under name, or nil when the flag
// was neither passed nor defaulted. Any declared alias may be used.
func (c *Context) Get(name string) any {
	return c.localFlags[normalizeFlagName(c.command.Flags, name)]
}

// Set stores a local flag value under the flag's primary name. Later hooks
// at the same level observe the update.
func (c *Context) Set(name string, value any) {
	c.localFlags[normalizeFlagName(c.command.Flags, name)] = value
}

// SetDefault stores a local flag value only when none is present.
func (c *Context) SetDefault(name string, value any) {
	key := normalizeFlagName(c.command.Flags, name)
	if _, ok := c.localFlags[key]; !ok {
		c.localFlags[key] = value
	}
}

// GetGlobal returns a value from the shared root-level flags, which are
// visible at every depth of the run.
func (c *Context) GetGlobal(name string) any {
	return c.globalFlags[normalizeFlagName(c.rootFlags(), name)]
}

// SetGlobal stores a value into the shared root-level flags, making it
// visible to every later hook at any depth.
func (c *Context) SetGlobal(name string, value any) {
	c.globalFlags[normalizeFlagName(c.rootFlags(), name)] = value
}

// SetGlobalDefault stores a root-level value only when none is present.
func (c *Context) SetGlobalDefault(name string, value any) {
	key := normalizeFlagName(c.rootFlags(), name)
	if _, ok := c.globalFlags[key]; !ok {
		c.globalFlags[key] = value
	}
}

// UsageErrorf builds a [UsageError] bound to this context, for a hook or
// action to return when the arguments it received do not make sense.
func (c *Context) UsageErrorf(format string, args ...any) error {
	return &UsageError{
		Message: fmt.Sprintf(format, args...),
		Context: c,
		Command: c.command,
	}
}

// ExitErrorf builds an [ExitError] bound to this context. [App.Main]
// reports the message and returns the given code.
func (c *Context) ExitErrorf(code int, format string, args ...any) error {
	return &ExitError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		Context: c,
		Command: c.command,
	}
}

// NotFoundErrorf builds a [NotFoundError] bound to this context, carrying
// the command path leading to the failure.
func (c *Context) NotFoundErrorf(path []string, format string, args ...any) error {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Context: c,
		Command: c.command,
	}
}

func (c *Context) rootFlags() []*Flag {
	if c.app != nil {
		return c.app.Flags
	}
	return nil
}

// GetFlag retrieves a typed flag value from the context, consulting local
// flags first and the shared globals second. Example usage:
//
//	verbose := GetFlag[bool](c, "verbose")
//	count := GetFlag[int](c, "count")
//
// An absent flag yields the zero value of T. A present value of the wrong
// type panics, since that is a programming error on one side of the flag
// declaration and it is better to fail loud and early than to mask it.
func GetFlag[T any](c *Context, name string) T {
	var zero T
	value := c.Get(name)
	if value == nil {
		value = c.GetGlobal(name)
	}
	if value == nil {
		return zero
	}
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %q: stored %T, requested %T", name, value, zero))
	}
	return v
}

// normalizeFlagName maps any declared alias to its flag's primary name.
// Unknown names pass through untouched so that hand-set values behave like
// plain map entries.
func normalizeFlagName(flags []*Flag, name string) string {
	for _, f := range flags {
		if f.HasName(name) {
			return f.PrimaryName()
		}
	}
	return name
}
