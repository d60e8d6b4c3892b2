package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/treebank"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print sentence, word and clause counts of a treebank",
		ArgsUsage: "<treebank.conllu>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("stat needs one treebank file")
			}

			tb, err := treebank.ReadFile(c.Args().First())
			if err != nil {
				return err
			}

			render.NewRenderer(ui.Out).Summary(stat.Summarize(tb))
			return nil
		},
	}
}
