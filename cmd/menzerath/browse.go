package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/browse"
	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/treebank"
)

func browseCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "browse the sentences of a treebank interactively",
		ArgsUsage: "<treebank.conllu>",
		Flags:     append([]cli.Flag{colorFlag()}, dictionaryFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("browse needs one treebank file")
			}

			tb, err := treebank.ReadFile(c.Args().First())
			if err != nil {
				return err
			}

			analyses, err := selectAnalyses(dictionaryOptions(c), nil)
			if err != nil {
				return err
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = c.Bool("color")
			return browse.NewHandler(tb, analyses, r).Run()
		},
	}
}
