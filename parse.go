package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// splitArguments cuts one command's argument span out of the token stream.
// The first token is the command's own matched name and is dropped. The
// earliest token matching a subcommand name or alias ends the span; when
// two subcommands first match at the same position the earlier declared one
// wins. Everything before the cut belongs to this command, everything from
// the cut on is handed to the next level untouched.
func splitArguments(cmd *Command, tokens []string) (next *Command, owned, remaining []string) {
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	cut := len(tokens)
	for _, sub := range cmd.Commands {
		if idx := sub.index(tokens); idx >= 0 && idx < cut {
			next, cut = sub, idx
		}
	}
	return next, tokens[:cut], tokens[cut:]
}

// resolveFlags evaluates one command's flag schema against its owned token
// span. It returns the resolved values keyed by primary flag name together
// with the tokens left over as positional arguments.
//
// Matched flag tokens and their value tokens are removed from the span,
// highest index first so earlier positions stay valid. A value token must
// exist, must not itself be a matched flag token, and must not already be
// claimed by another flag. Any leftover token that still starts with a dash
// resolves to nothing and fails the run.
func resolveFlags(flags []*Flag, owned []string, c *Context, cmd *Command) (FlagMap, Args, error) {
	values := FlagMap{}
	toks := append([]string(nil), owned...)

	type match struct {
		flag *Flag
		idx  int
	}
	var matches []match
	flagAt := make(map[int]bool)

	for _, f := range flags {
		idx := f.index(toks)
		if idx < 0 {
			if f.Default != nil {
				values[f.PrimaryName()] = f.Default
			} else if f.Required {
				return nil, nil, resolveError(c, cmd, "flag %q is required", f.String())
			}
			continue
		}
		if f.index(toks[idx+1:]) >= 0 {
			return nil, nil, resolveError(c, cmd, "flag %q declared more than once", f.String())
		}
		matches = append(matches, match{flag: f, idx: idx})
		flagAt[idx] = true
	}

	claimed := make(map[int]bool)
	for _, m := range matches {
		if !m.flag.HasValue() {
			continue
		}
		slot := m.idx + 1
		if slot >= len(toks) || flagAt[slot] || claimed[slot] {
			return nil, nil, resolveError(c, cmd, "flag %q no value specified", m.flag.String())
		}
		claimed[slot] = true
	}

	slices.SortFunc(matches, func(a, b match) int {
		return cmp.Compare(b.idx, a.idx)
	})
	for _, m := range matches {
		if m.flag.HasValue() {
			raw := toks[m.idx+1]
			value, err := m.flag.decode(raw)
			if err != nil {
				return nil, nil, resolveError(c, cmd, "flag %q decode fail: %q", m.flag.String(), raw)
			}
			values[m.flag.PrimaryName()] = value
			toks = slices.Delete(toks, m.idx+1, m.idx+2)
		} else {
			values[m.flag.PrimaryName()] = true
		}
		toks = slices.Delete(toks, m.idx, m.idx+1)
	}

	for _, tok := range toks {
		if strings.HasPrefix(tok, "-") {
			return nil, nil, &NotFoundError{
				Message: tok,
				Path:    commandPath(c, cmd),
				Context: c,
				Command: cmd,
			}
		}
	}
	return values, Args(toks), nil
}

// resolveError wraps a resolver failure in a [UsageError] bound to the
// parent context, which is the newest complete level at the time the error
// is raised.
func resolveError(c *Context, cmd *Command, format string, args ...any) error {
	return &UsageError{
		Message: fmt.Sprintf(format, args...),
		Context: c,
		Command: cmd,
	}
}
