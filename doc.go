// Package cli provides a declarative framework for building command-line
// applications with nested subcommands, aliased flags, and a before/action/
// after hook lifecycle around every dispatch.
//
// An application is a tree of [Command] values rooted in an [App]. Dispatch
// walks argument tokens through the tree one level at a time: each command
// claims the span of tokens up to the first subcommand name, resolves its
// own flags out of that span, and leaves the rest as positional arguments.
// Hooks receive a [Context] chained to every level above them, with the
// root level's flags shared across the whole run. Help pages, typed flag
// values, and "did you mean" suggestions come built in, and everything from
// the value parsers to the page templates can be swapped per application.
package cli
