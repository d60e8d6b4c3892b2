package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "menzerath: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "menzerath",
		Usage:     "measure nested linguistic units of a CoNLL-U treebank",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level: debug, info, warn or error",
				EnvVars: []string{"MENZERATH_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogger(ui.Err, c.String("log-level"))
		},
		Commands: []*cli.Command{
			exportCommand(ui),
			analysesCommand(ui),
			sentenceCommand(ui),
			statCommand(ui),
			fitCommand(ui),
			nlregCommand(ui),
			browseCommand(ui),
			versionCommand(ui),
		},
	}
}

func setupLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func logger() *slog.Logger {
	return slog.Default().With(slog.String("component", "cmd"))
}
