package cli

import "fmt"

// Exit codes borrowed from sysexits.h for the error kinds the dispatcher can
// produce. [App.Main] maps each error to one of these before returning.
const (
	ExUsage       = 64 // command line usage error
	ExUnavailable = 69 // service unavailable
	ExConfig      = 78 // configuration error
)

// ConfigError reports an invalid command tree, such as sibling commands or
// flags whose names overlap. It is raised during validation, before any
// arguments are inspected.
type ConfigError struct {
	Message string
	Command *Command
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cmd=%q error=%q", e.Command.Name, e.Message)
}

// UsageError reports arguments that do not satisfy the command tree, such as
// a missing required flag, a flag passed twice, or a run that never reached a
// command with an action.
type UsageError struct {
	Message string
	Context *Context
	Command *Command
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("cmd=%q error=%q", e.Command.Name, e.Message)
}

// NotFoundError reports a token that resolved to neither a command nor a
// flag. Path holds the command names from the root down to the node where
// resolution stopped.
type NotFoundError struct {
	Message string
	Path    []string
	Context *Context
	Command *Command
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cmd=%q error=%q", e.Command.Name, e.Message)
}

// ExitError carries an explicit exit code out of a hook or action. [App.Main]
// returns the code unchanged after reporting the message.
type ExitError struct {
	Message string
	Code    int
	Context *Context
	Command *Command
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("cmd=%q error=%q", e.Command.Name, e.Message)
}

// commandPath reconstructs the command names leading to cmd by walking the
// context chain upward from the level that was current when resolution
// failed.
func commandPath(c *Context, cmd *Command) []string {
	path := []string{cmd.Name}
	for c != nil && c.parent != nil {
		if !contains(path, c.command.Name) {
			path = append([]string{c.command.Name}, path...)
		}
		c = c.parent
	}
	return path
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
