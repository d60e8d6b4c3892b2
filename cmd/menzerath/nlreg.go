package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/nlreg"
)

type NlregOptions struct {
	Out     string
	Dir     string
	Command string
	Tables  []string
}

func nlregCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "nlreg",
		Usage:     "write NLREG programs for xfy tables and run NLREG on them",
		ArgsUsage: "[xfy table...]",
		Flags: []cli.Flag{
			outFlag(),
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "directory of the program and listing files",
			},
			&cli.StringFlag{
				Name:    "nlreg",
				Value:   nlreg.DefaultCommand,
				Usage:   "NLREG console executable",
				EnvVars: []string{"MENZERATH_NLREG"},
			},
		},
		Action: func(c *cli.Context) error {
			return runNlreg(c, NlregOptions{
				Out:     c.String("out"),
				Dir:     c.String("dir"),
				Command: c.String("nlreg"),
				Tables:  c.Args().Slice(),
			}, ui)
		},
	}
}

func runNlreg(c *cli.Context, opts NlregOptions, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewTableRepository(&p, opts.Out)
	if err != nil {
		return err
	}

	names, err := xfyNames(repo, opts.Tables)
	if err != nil {
		return err
	}

	runner := nlreg.NewRunner(opts.Command, opts.Dir)
	count := 0
	for _, name := range names {
		t, err := repo.ReadXFY(name)
		if err != nil {
			return err
		}

		err = runner.Run(c.Context, name, t)
		if errors.Is(err, nlreg.ErrNoData) {
			logger().Info("table skipped", slog.String("table", name))
			continue
		}
		if err != nil {
			return err
		}
		count++
	}

	fmt.Fprintf(ui.Out, "NLREG run on %d tables\n", count)
	return nil
}
