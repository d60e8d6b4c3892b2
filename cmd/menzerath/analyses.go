package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/hanzi"
	"github.com/revelaction/menzerath/unit"
)

func analysesCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "analyses",
		Usage: "list the analyses and the tables they write",
		Action: func(c *cli.Context) error {
			return runAnalyses(ui)
		},
	}
}

func runAnalyses(ui UI) error {
	// an empty dictionary lists the analyses that need character metadata too
	for _, a := range unit.All(hanzi.Dictionary{}) {
		types := "-"
		if a.HasTypes() {
			types = a.TypeName
		}

		_, err := fmt.Fprintf(ui.Out, "%-36s %-36s %s\n", a.Name, types, strings.Join(a.Header[2:], "/"))
		if err != nil {
			return err
		}
	}
	return nil
}
