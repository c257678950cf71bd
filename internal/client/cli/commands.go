package cli

import (
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/diary/internal/client/config"
	"github.com/dmitrijs2005/diary/internal/client/state"
	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var errMissingRef = errors.New("missing entry id")

// NewCLI builds the diary command. Global flags override the config file
// and the environment.
func NewCLI(in io.Reader, out, errOut io.Writer) *cli.App {
	var app *App

	before := func(c *cli.Context) error {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		if c.IsSet("api-url") {
			cfg.APIBaseURL = c.String("api-url")
		}
		if c.IsSet("timeout") {
			cfg.RequestTimeout = c.Duration("timeout")
		}
		if c.IsSet("page-size") {
			cfg.PageSize = c.Int("page-size")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := logging.New(logging.FormatHuman, cfg.LogLevel, errOut)
		if err != nil {
			return err
		}
		app = NewApp(cfg, logger, out, newLinePrompter(in, out))
		return nil
	}

	repl := func(c *cli.Context) error {
		if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			p := newLinerPrompter(app.config.HistoryFile, replCommands)
			defer func() {
				if err := p.Close(); err != nil {
					app.logger.Warn(c.Context, "failed to save history", "error", err)
				}
			}()
			app.prompt = p
		}
		return runREPL(c.Context, app, app.prompt)
	}

	return &cli.App{
		Name:      "diary",
		Usage:     "keep a personal diary from the terminal",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a JSON config file (comments allowed)",
				EnvVars: []string{"DIARY_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "base URL of the diary API",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "entries per page",
			},
		},
		Before: before,
		Action: repl,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "list entries, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "page to show"},
				},
				Action: func(c *cli.Context) error {
					if err := app.Reload(c.Context); err != nil {
						return err
					}
					return app.List(c.Context, c.Int("page"))
				},
			},
			{
				Name:      "show",
				Usage:     "show an entry in full",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					ref, _, err := parseRef(c)
					if err != nil {
						return err
					}
					return app.Show(c.Context, ref)
				},
			},
			{
				Name:  "create",
				Usage: "write a new entry",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "topic", Aliases: []string{"t"}, Usage: "entry topic (3-25 characters)"},
					&cli.StringFlag{Name: "body", Aliases: []string{"b"}, Usage: "entry body (10-1000 characters)"},
				},
				Action: func(c *cli.Context) error {
					if !c.IsSet("topic") && !c.IsSet("body") {
						return app.New(c.Context)
					}
					return app.CreateWith(c.Context, state.Draft{Topic: c.String("topic"), Body: c.String("body")})
				},
			},
			{
				Name:      "edit",
				Usage:     "change the topic or body of an entry",
				ArgsUsage: "ID [--topic TOPIC] [--body BODY]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "topic", Aliases: []string{"t"}, Usage: "new topic"},
					&cli.StringFlag{Name: "body", Aliases: []string{"b"}, Usage: "new body"},
				},
				Action: func(c *cli.Context) error {
					ref, flags, err := parseRef(c)
					if err != nil {
						return err
					}
					if !flags.IsSet("topic") && !flags.IsSet("body") {
						return app.Edit(c.Context, ref)
					}
					return app.EditWith(c.Context, ref, flags.Optional("topic"), flags.Optional("body"))
				},
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "delete an entry",
				ArgsUsage: "ID [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
				},
				Action: func(c *cli.Context) error {
					ref, flags, err := parseRef(c)
					if err != nil {
						return err
					}
					return app.Delete(c.Context, ref, flags.Bool("yes"))
				},
			},
			{
				Name:  "export",
				Usage: "write every entry to a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output file"},
				},
				Action: func(c *cli.Context) error {
					return app.Export(c.Context, c.String("out"))
				},
			},
			{
				Name:   "repl",
				Usage:  "start the interactive shell (default)",
				Action: repl,
			},
		},
	}
}
