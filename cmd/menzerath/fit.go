package main

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/fit"
	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/storage"
)

func fitCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "fit",
		Usage:     "fit the truncated, power and complete models to xfy tables",
		ArgsUsage: "[xfy table...]",
		Flags:     []cli.Flag{outFlag(), colorFlag()},
		Action: func(c *cli.Context) error {
			return runFit(c.String("out"), c.Args().Slice(), c.Bool("color"), ui)
		},
	}
}

// xfyNames returns names, or every stored xfy table when names is empty.
func xfyNames(repo storage.TableReader, names []string) ([]string, error) {
	if len(names) > 0 {
		return names, nil
	}
	return repo.Names(storage.XFY)
}

func runFit(out string, names []string, color bool, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewTableRepository(&p, out)
	if err != nil {
		return err
	}

	names, err = xfyNames(repo, names)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = color

	for _, name := range names {
		t, err := repo.ReadXFY(name)
		if err != nil {
			return err
		}

		x, y := t.Points()
		results, err := fit.Fit(x, y)
		if err != nil {
			logger().Warn("table skipped", slog.String("table", name), slog.Any("error", err))
			continue
		}

		r.Fit(name, results)
	}

	return nil
}
