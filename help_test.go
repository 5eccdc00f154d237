package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHelpApp builds an application with every piece of metadata the help
// pages can show.
func newHelpApp() (*App, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	app := &App{
		Command: Command{
			Name:  "imgr",
			Usage: "image management from your terminal",
			Flags: []*Flag{
				StringFlag("config, c", "path to an alternate config file"),
				{Name: "secret", Hidden: true},
			},
			Commands: []*Command{
				{Name: "version", Usage: "print version and exit"},
				{Name: "login", Usage: "authorize this machine", Category: "account"},
				{Name: "logout", Usage: "drop stored credentials", Category: "account"},
				{
					Name:      "upload",
					Aliases:   []string{"up"},
					Usage:     "upload images",
					Category:  "*",
					ArgsUsage: "<file...>",
					Flags:     []*Flag{BoolFlag("anonymous, a", "upload without an account")},
					Commands:  []*Command{{Name: "album", Usage: "upload a whole album"}},
				},
				{Name: "internal", Hidden: true, Usage: "not for you"},
			},
		},
		Version:     "2.4.0",
		Description: "Manage image uploads, albums and credits without leaving the shell.",
		Authors:     []string{"Andrew Scott", "Sam Hart"},
		Copyright:   "(c) 2024 imgr authors",
		Writer:      buf,
		ErrWriter:   buf,
	}
	return app, buf
}

func TestAppHelpPage(t *testing.T) {
	t.Parallel()

	t.Run("all sections render", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		page := buf.String()
		assert.Contains(t, page, "imgr - image management from your terminal")
		assert.Contains(t, page, "VERSION:\n    2.4.0")
		assert.Contains(t, page, "DESCRIPTION:\n    Manage image uploads")
		assert.Contains(t, page, "AUTHORS:\n    Andrew Scott\n    Sam Hart")
		assert.Contains(t, page, "COPYRIGHT:\n    (c) 2024 imgr authors")
		assert.Contains(t, page, "GLOBAL OPTIONS:")
		assert.Contains(t, page, "path to an alternate config file")
	})
	t.Run("flag names are padded to align", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		// "help, h" pads to the width of "config, c".
		assert.Contains(t, buf.String(), "help, h   - shows main help")
		assert.Contains(t, buf.String(), "config, c - path to an alternate config file")
	})
	t.Run("anonymous commands lead and categories follow", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		page := buf.String()
		assert.Contains(t, page, "upload, up")
		assert.Contains(t, page, "\n    account:\n")
		assert.Less(t, strings.Index(page, "version"), strings.Index(page, "account:"))
		assert.Less(t, strings.Index(page, "upload, up"), strings.Index(page, "login"))
	})
	t.Run("hidden entries never show", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		assert.NotContains(t, buf.String(), "internal")
		assert.NotContains(t, buf.String(), "secret")
	})
	t.Run("single author heading stays singular", func(t *testing.T) {
		app, buf := newHelpApp()
		app.Authors = []string{"Andrew Scott"}
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		assert.Contains(t, buf.String(), "AUTHOR:\n    Andrew Scott")
		assert.NotContains(t, buf.String(), "AUTHORS:")
	})
	t.Run("version defaults when unset", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		app := &App{
			Command:   Command{Name: "bare"},
			Writer:    buf,
			ErrWriter: buf,
		}
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		assert.Contains(t, buf.String(), "VERSION:\n    0.0.1")
	})
}

func TestCommandHelpPage(t *testing.T) {
	t.Parallel()

	t.Run("categorized command shows its category", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help", "login"}))
		page := buf.String()
		assert.Contains(t, page, "login - authorize this machine")
		assert.Contains(t, page, "CATEGORY:\n    account")
		assert.NotContains(t, page, "VERSION:")
	})
	t.Run("usage line lists flags commands and arguments", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help", "upload"}))
		page := buf.String()
		assert.Contains(t, page, "USAGE:\n    upload [flags] command <file...>")
		assert.Contains(t, page, "OPTIONS:")
		assert.Contains(t, page, "upload without an account")
		assert.Contains(t, page, "album - upload a whole album")
	})
	t.Run("uncategorized command has no category section", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help", "version"}))
		assert.NotContains(t, buf.String(), "CATEGORY:")
	})
	t.Run("aliases resolve to the same page", func(t *testing.T) {
		app, buf := newHelpApp()
		require.NoError(t, app.Run(context.Background(), []string{"help", "up"}))
		assert.Contains(t, buf.String(), "upload - upload images")
	})
	t.Run("path keeps canonical names past an alias", func(t *testing.T) {
		app, _ := newHelpApp()
		err := app.Run(context.Background(), []string{"help", "up", "nope"})
		require.Error(t, err)
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		if diff := cmp.Diff([]string{"imgr", "upload"}, notFoundErr.Path); diff != "" {
			t.Errorf("unexpected path (-want +got):\n%s", diff)
		}
	})
}

func TestHelpTemplateOverride(t *testing.T) {
	t.Parallel()

	t.Run("application template", func(t *testing.T) {
		app, buf := newHelpApp()
		app.HelpAppTemplate = "{{.Name}} says {{.Version}}"
		require.NoError(t, app.Run(context.Background(), []string{"help"}))
		assert.Equal(t, "imgr says 2.4.0\n", buf.String())
	})
	t.Run("command template", func(t *testing.T) {
		app, buf := newHelpApp()
		app.HelpCommandTemplate = "page for {{.Name}}"
		require.NoError(t, app.Run(context.Background(), []string{"help", "login"}))
		assert.Equal(t, "page for login\n", buf.String())
	})
}
