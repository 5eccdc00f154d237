package cli

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/imgurbot12/cli/pkg/textutil"
)

// appHelpTemplate renders the application help page. Override it per app
// with [App.HelpAppTemplate]. Templates receive the fields of [helpData]
// along with the helper functions registered in helpFuncs.
const appHelpTemplate = `
NAME:
    {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

USAGE:
    {{if .VisibleFlags}}[global flags] {{end}}{{if .VisibleCommands}}command [command flags] {{end}}{{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}

VERSION:
    {{.Version}}
{{- if .Description}}

DESCRIPTION:
    {{wrap .Description 76}}
{{- end}}
{{- if .Authors}}

AUTHOR{{if gt (len .Authors) 1}}S{{end}}:
{{- range .Authors}}
    {{.}}
{{- end}}
{{- end}}
{{- if .VisibleCommands}}

COMMANDS:
{{- $data := .}}
{{- range $category := .VisibleCategories}}
{{- $commands := $data.CommandsByCategory $category}}
{{- $width := nameWidth $commands}}
{{- if $category}}

    {{$category}}:
{{- end}}
{{- range $commands}}
    {{if $category}}    {{end}}{{rpad (names .) $width}} - {{.Usage}}
{{- end}}
{{- end}}
{{- end}}
{{- if .VisibleFlags}}

GLOBAL OPTIONS:
{{- $width := flagWidth .VisibleFlags}}
{{- range .VisibleFlags}}
    {{rpad .String $width}} - {{.Usage}}
{{- end}}
{{- end}}
{{- if .Copyright}}

COPYRIGHT:
    {{.Copyright}}
{{- end}}
`

// commandHelpTemplate renders the help page of a single command. Override
// it per app with [App.HelpCommandTemplate].
const commandHelpTemplate = `
NAME:
    {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

USAGE:
    {{.Name}}{{if .VisibleFlags}} [flags]{{end}}{{if .VisibleCommands}} command{{end}}{{if .ArgsUsage}} {{.ArgsUsage}}{{end}}
{{- if .Category}}

CATEGORY:
    {{.Category}}
{{- end}}
{{- if .VisibleCommands}}

COMMANDS:
{{- $data := .}}
{{- range $category := .VisibleCategories}}
{{- $commands := $data.CommandsByCategory $category}}
{{- $width := nameWidth $commands}}
{{- if $category}}

    {{$category}}:
{{- end}}
{{- range $commands}}
    {{if $category}}    {{end}}{{rpad (names .) $width}} - {{.Usage}}
{{- end}}
{{- end}}
{{- end}}
{{- if .VisibleFlags}}

OPTIONS:
{{- $width := flagWidth .VisibleFlags}}
{{- range .VisibleFlags}}
    {{rpad .String $width}} - {{.Usage}}
{{- end}}
{{- end}}
`

// helpFuncs are available to the built-in templates and to any override
// set on the [App].
var helpFuncs = template.FuncMap{
	"rpad": textutil.PadRight,
	"wrap": func(text string, width int) string {
		return strings.Join(textutil.Wrap(text, width), "\n    ")
	},
	"names": func(c *Command) string {
		return c.displayName()
	},
	"nameWidth": func(commands []*Command) int {
		width := 0
		for _, c := range commands {
			width = max(width, len(c.displayName()))
		}
		return width
	},
	"flagWidth": func(flags []*Flag) int {
		width := 0
		for _, f := range flags {
			width = max(width, len(f.String()))
		}
		return width
	},
}

// helpData is the root object handed to help templates. Application
// metadata is only filled in when the root of the tree is rendered.
type helpData struct {
	Name        string
	Usage       string
	ArgsUsage   string
	Category    string
	Version     string
	Description string
	Authors     []string
	Email       string
	Copyright   string

	node *Command
}

func (d helpData) VisibleFlags() []*Flag       { return d.node.VisibleFlags() }
func (d helpData) VisibleCommands() []*Command { return d.node.VisibleCommands() }
func (d helpData) VisibleCategories() []string { return d.node.VisibleCategories() }
func (d helpData) CommandsByCategory(category string) []*Command {
	return d.node.CommandsByCategory(category)
}

// helpFlag builds the boolean flag injected at the front of the root flag
// list. Raising it at any level short-circuits dispatch into help output.
func helpFlag() *Flag {
	return BoolFlag("help, h", "shows main help")
}

// helpCommand builds the command injected at the front of the root command
// list. Its arguments walk the tree to pick the page to render.
func helpCommand() *Command {
	return &Command{
		Name:      "help",
		Aliases:   []string{"h"},
		Usage:     "shows help for a command",
		ArgsUsage: "[command...]",
		Action:    helpAction,
	}
}

// helpAction serves the help command, resolving its positional arguments as
// a command path from the root of the tree.
func helpAction(_ context.Context, c *Context) (Result, error) {
	return Done, c.App().showHelp(c, nil)
}

// showHelp resolves the context's positional arguments as a command path
// starting at cmd, or at the root when cmd is nil, and renders the page of
// the command it lands on. An unresolvable segment produces a
// [NotFoundError] whose path holds the commands reached so far.
func (a *App) showHelp(c *Context, cmd *Command) error {
	command := cmd
	if command == nil {
		command = &a.Command
	}
	if c.Args().Present() {
		path := []string{a.Name}
		for _, arg := range c.Args() {
			sub := command.findCommand(arg)
			if sub == nil {
				return &NotFoundError{Message: arg, Path: path, Context: c, Command: command}
			}
			path = append(path, sub.Name)
			command = sub
		}
	}
	return a.renderHelp(command)
}

// renderHelp writes the help page for cmd to the application writer, using
// the application template for the root of the tree and the command
// template for every other node.
func (a *App) renderHelp(cmd *Command) error {
	text := a.HelpAppTemplate
	if cmd != &a.Command {
		text = a.HelpCommandTemplate
		if text == "" {
			text = commandHelpTemplate
		}
	} else if text == "" {
		text = appHelpTemplate
	}
	tmpl, err := template.New("help").Funcs(helpFuncs).Parse(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("failed to parse help template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, a.helpData(cmd)); err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}
	fmt.Fprintln(a.Writer, b.String())
	return nil
}

func (a *App) helpData(cmd *Command) helpData {
	d := helpData{
		Name:      cmd.Name,
		Usage:     cmd.Usage,
		ArgsUsage: cmd.ArgsUsage,
		Category:  normalizeCategory(cmd.Category),
		node:      cmd,
	}
	if cmd == &a.Command {
		d.Version = a.Version
		d.Description = a.Description
		d.Authors = a.Authors
		d.Email = a.Email
		d.Copyright = a.Copyright
	}
	return d
}
