package cli

import (
	"context"
	"fmt"

	"github.com/google/shlex"
)

// Run dispatches args against the command tree and returns the first error
// raised along the way, typed as one of [ConfigError], [UsageError],
// [NotFoundError] or [ExitError] unless a hook returned something else.
// Args holds everything after the program name, typically os.Args[1:].
//
// Dispatch walks the tree one level at a time. At each level the argument
// span owned by the current command is cut off and resolved against its
// flag schema, and a [Context] is chained onto the levels above. A command's
// Before, Action and After hooks run only when it is the final command of
// the invocation, unless its AllowParent is set. The root level's resolved
// flags are shared with every context of the run, so global options stay
// visible at any depth.
//
// When the help flag is raised at any level, all remaining hook execution
// is skipped except for AllowParent commands, and the help page of the
// final command is rendered instead. A run whose final action reports
// [NoAction] fails with a usage error.
func (a *App) Run(ctx context.Context, args []string) error {
	a.setup()
	if err := Validate(&a.Command); err != nil {
		return err
	}

	var (
		tokens    = append([]string{a.Name}, args...)
		chain     = newContext(a, &a.Command, nil, FlagMap{}, FlagMap{}, nil)
		current   = &a.Command
		next      = &a.Command
		result    = NoAction
		global    FlagMap
		wantsHelp bool
	)
	for next != nil {
		cmd, parent := next, chain
		var owned []string
		next, owned, tokens = splitArguments(cmd, tokens)
		local, positional, err := resolveFlags(cmd.Flags, owned, parent, cmd)
		if err != nil {
			return err
		}
		if global == nil {
			global = local
		}
		chain = newContext(a, cmd, parent, global, local, positional)
		current = cmd
		wantsHelp = wantsHelp || hasHelpFlag(global)
		if (next == nil && !wantsHelp) || cmd.AllowParent {
			if cmd.Before != nil {
				if err := cmd.Before(ctx, chain); err != nil {
					return err
				}
			}
			if cmd.Action != nil {
				if result, err = cmd.Action(ctx, chain); err != nil {
					return err
				}
			} else {
				result = NoAction
			}
			if cmd.After != nil {
				if err := cmd.After(ctx, chain); err != nil {
					return err
				}
			}
		}
	}
	if wantsHelp {
		return a.showHelp(chain, current)
	}
	if result == NoAction {
		return &UsageError{Message: "no action taken", Context: chain, Command: current}
	}
	return nil
}

// RunString splits line with shell quoting rules and dispatches the result,
// which makes embedding the tree behind a REPL or remote control socket a
// one-liner.
func (a *App) RunString(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("failed to split command line: %w", err)
	}
	return a.Run(ctx, args)
}

// hasHelpFlag reports whether the root-level help flag was raised.
func hasHelpFlag(global FlagMap) bool {
	v, _ := global["help"].(bool)
	return v
}
