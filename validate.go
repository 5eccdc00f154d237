package cli

import (
	"fmt"
	"strings"
)

// Validate walks the command tree rooted at cmd and reports the first
// structural problem as a [ConfigError]. It checks that every command and
// flag carries a usable name and that no two flags on one node and no two
// sibling commands share a name or alias.
//
// Validation reads the tree without changing it, so a tree that passes once
// keeps passing until it is modified. [App.Run] validates the full tree
// before touching any arguments.
func Validate(cmd *Command) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return &ConfigError{Message: "command has no name", Command: cmd}
	}
	if strings.ContainsAny(cmd.Name, " \t") {
		return &ConfigError{
			Message: fmt.Sprintf("command name %q contains spaces", cmd.Name),
			Command: cmd,
		}
	}
	if err := validateFlags(cmd); err != nil {
		return err
	}
	if err := validateSubcommands(cmd); err != nil {
		return err
	}
	for _, sub := range cmd.Commands {
		if err := Validate(sub); err != nil {
			return err
		}
	}
	return nil
}

// validateFlags rejects flags without names and any pair of flags on the
// same node that share a name or alias.
func validateFlags(cmd *Command) error {
	for i, f := range cmd.Flags {
		if len(f.Names()) == 0 {
			return &ConfigError{
				Message: fmt.Sprintf("command %q > flag has no name", cmd.Name),
				Command: cmd,
			}
		}
		for _, other := range cmd.Flags[:i] {
			for _, name := range f.Names() {
				if other.HasName(name) {
					return &ConfigError{
						Message: fmt.Sprintf("command %q > flag %q name overlaps %q",
							cmd.Name, f.String(), other.String()),
						Command: cmd,
					}
				}
			}
		}
	}
	return nil
}

// validateSubcommands rejects sibling commands whose names or aliases
// collide in either direction.
func validateSubcommands(cmd *Command) error {
	for i, sub := range cmd.Commands {
		for _, other := range cmd.Commands[:i] {
			for _, name := range sub.Names() {
				if other.HasName(name) {
					return &ConfigError{
						Message: fmt.Sprintf("command %q > subcommand %q name overlaps %q",
							cmd.Name, sub.displayName(), other.displayName()),
						Command: cmd,
					}
				}
			}
		}
	}
	return nil
}
