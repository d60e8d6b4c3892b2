package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/treebank"
)

func sentenceCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "render sentences of a treebank with their clauses and segments",
		ArgsUsage: "<treebank.conllu> [sent_id...]",
		Flags:     []cli.Flag{colorFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("sentence needs a treebank file")
			}
			return runSentence(c.Args().First(), c.Args().Tail(), c.Bool("color"), ui)
		},
	}
}

// runSentence renders the given sentences, all of them when ids is empty.
func runSentence(path string, ids []string, color bool, ui UI) error {
	tb, err := treebank.ReadFile(path)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = color

	if len(ids) == 0 {
		ids = tb.IDs()
	}

	for _, id := range ids {
		s, ok := tb.Sentence(id)
		if !ok {
			return fmt.Errorf("sentence not found: %s", id)
		}
		r.Sentence(s)
	}

	return nil
}
