package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imgurbot12/cli/pkg/suggest"
)

// App is the root of a command tree plus the metadata shown on its help
// page. The zero value is not usable directly; at minimum Name must be set.
// Everything else is optional:
//
//	app := &cli.App{
//	    Command: cli.Command{
//	        Name:     "greet",
//	        Usage:    "say hello politely",
//	        Commands: []*cli.Command{...},
//	    },
//	    Version: "1.2.0",
//	}
//	os.Exit(app.Main(context.Background(), os.Args[1:]))
//
// A help flag ("help, h") and a help command ("help", alias "h") are placed
// at the front of the root flag and command lists on first run.
type App struct {
	Command

	// Version is printed on the application help page. Defaults to "0.0.1".
	Version string

	// Description is the long-form text on the application help page.
	Description string

	// Authors and Email identify the maintainers on the help page.
	Authors []string
	Email   string

	// Copyright is the trailing notice on the help page.
	Copyright string

	// Writer receives regular output such as help pages. Defaults to
	// [os.Stdout].
	Writer io.Writer

	// ErrWriter receives error reports from [App.Main]. Defaults to
	// [os.Stderr].
	ErrWriter io.Writer

	// HelpAppTemplate and HelpCommandTemplate override the built-in help
	// page templates. See help.go for the template data contract.
	HelpAppTemplate     string
	HelpCommandTemplate string

	// Error handlers override the default reporting in [App.Main]. Each
	// returns the process exit code.
	OnUsageError    func(*UsageError) int
	OnExitError     func(*ExitError) int
	OnNotFoundError func(*NotFoundError) int
	OnConfigError   func(*ConfigError) int

	setupDone bool
}

// Main runs the application and converts the outcome into a process exit
// code, reporting errors through the configured handlers. Typical usage:
//
//	os.Exit(app.Main(ctx, os.Args[1:]))
func (a *App) Main(ctx context.Context, args []string) int {
	a.setup()
	err := a.Run(ctx, args)
	if err == nil {
		return 0
	}
	var (
		usageErr    *UsageError
		exitErr     *ExitError
		notFoundErr *NotFoundError
		configErr   *ConfigError
	)
	switch {
	case errors.As(err, &usageErr):
		if a.OnUsageError != nil {
			return a.OnUsageError(usageErr)
		}
		return a.usageError(usageErr)
	case errors.As(err, &exitErr):
		if a.OnExitError != nil {
			return a.OnExitError(exitErr)
		}
		return a.exitError(exitErr)
	case errors.As(err, &notFoundErr):
		if a.OnNotFoundError != nil {
			return a.OnNotFoundError(notFoundErr)
		}
		return a.notFoundError(notFoundErr)
	case errors.As(err, &configErr):
		if a.OnConfigError != nil {
			return a.OnConfigError(configErr)
		}
		return a.configError(configErr)
	}
	fmt.Fprintf(a.ErrWriter, "error: %v\n", err)
	return 1
}

// setup prepares the application for its first run, filling defaulted
// fields and injecting the help flag and help command at the front of the
// root lists.
func (a *App) setup() {
	if a.setupDone {
		return
	}
	a.setupDone = true
	if a.Version == "" {
		a.Version = "0.0.1"
	}
	if a.Writer == nil {
		a.Writer = os.Stdout
	}
	if a.ErrWriter == nil {
		a.ErrWriter = os.Stderr
	}
	a.Flags = append([]*Flag{helpFlag()}, a.Flags...)
	a.Commands = append([]*Command{helpCommand()}, a.Commands...)
}

// usageError reports arguments the tree could not accept, follows up with
// the help page of the failing command, and exits with EX_USAGE.
func (a *App) usageError(err *UsageError) int {
	fmt.Fprintf(a.ErrWriter, "Incorrect Usage: %s\n\n", err.Message)
	_ = a.renderHelp(err.Command)
	return ExUsage
}

// exitError reports an explicit exit raised from a hook and passes its code
// through.
func (a *App) exitError(err *ExitError) int {
	fmt.Fprintf(a.ErrWriter, "App-Error: %v\n", err)
	return err.Code
}

// notFoundError reports an unknown flag or an unresolvable help topic,
// suggesting nearby command names for the latter.
func (a *App) notFoundError(err *NotFoundError) int {
	if strings.HasPrefix(err.Message, "-") {
		fmt.Fprintf(a.ErrWriter, "Command: %s, Invalid Flag: %s\n", err.Command.Name, err.Message)
		return ExUnavailable
	}
	fmt.Fprintf(a.ErrWriter, "No Help topic for: %s\n", strings.Join(err.Path, "->"))
	var known []string
	for _, sub := range err.Command.Commands {
		known = append(known, sub.Name)
	}
	if hints := suggest.Similar(err.Message, known, 3); len(hints) > 0 {
		fmt.Fprintf(a.ErrWriter, "Did you mean one of these?\n\t%s\n", strings.Join(hints, "\n\t"))
	}
	return ExUnavailable
}

// configError reports a broken command tree and exits with EX_CONFIG.
func (a *App) configError(err *ConfigError) int {
	fmt.Fprintf(a.ErrWriter, "ConfigError: %s\n", err.Message)
	return ExConfig
}
