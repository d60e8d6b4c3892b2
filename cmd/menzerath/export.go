package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/treebank"
	"github.com/revelaction/menzerath/unit"
)

const (
	xfySuffix      = "_xfy"
	weightedSuffix = "_xfy_weighted"
)

type ExportOptions struct {
	Treebank    string
	Out         string
	Dictionary  DictionaryOptions
	Analyses    []string
	WeightLimit int
	Quiet       bool
}

func exportCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "run the analyses on a treebank and write unit, xfy and weighted xfy tables",
		ArgsUsage: "<treebank.conllu>",
		Flags: append([]cli.Flag{
			outFlag(),
			analysisFlag(),
			weightLimitFlag(),
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "no progress bar",
			},
		}, dictionaryFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("export needs one treebank file")
			}

			return runExport(ExportOptions{
				Treebank:    c.Args().First(),
				Out:         c.String("out"),
				Dictionary:  dictionaryOptions(c),
				Analyses:    c.StringSlice("analysis"),
				WeightLimit: c.Int("weight-limit"),
				Quiet:       c.Bool("quiet"),
			}, ui)
		},
	}
}

func selectAnalyses(d DictionaryOptions, names []string) ([]unit.Analysis, error) {
	dict, err := loadDictionary(d)
	if err != nil {
		return nil, err
	}

	all := unit.All(dict)
	if len(names) == 0 {
		return all, nil
	}
	return unit.Select(all, names)
}

func runExport(opts ExportOptions, ui UI) error {
	tb, err := treebank.ReadFile(opts.Treebank)
	if err != nil {
		return err
	}

	analyses, err := selectAnalyses(opts.Dictionary, opts.Analyses)
	if err != nil {
		return err
	}

	var p Pool
	defer p.Close()

	repo, err := NewTableRepository(&p, opts.Out)
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if !opts.Quiet {
		progress := uiprogress.New()
		progress.SetOut(ui.Err)
		progress.Start()
		defer progress.Stop()

		bar = progress.AddBar(len(analyses))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	for _, a := range analyses {
		if err := exportAnalysis(repo, a, tb, opts.WeightLimit); err != nil {
			return err
		}

		if bar != nil {
			bar.Incr()
		}
	}

	fmt.Fprintf(ui.Out, "Exported %d analyses of %d sentences to %s\n", len(analyses), len(tb.Sentences), opts.Out)
	return nil
}

func exportAnalysis(repo storage.TableWriter, a unit.Analysis, tb *treebank.Treebank, limit int) error {
	records := a.Run(tb)
	logger().Info("analysis done", slog.String("analysis", a.Name), slog.Int("records", len(records)))

	if err := exportTable(repo, a.Name, a.Header, records, limit); err != nil {
		return err
	}

	if !a.HasTypes() {
		return nil
	}

	return exportTable(repo, a.TypeName, a.Header, unit.Types(records), limit)
}

// exportTable writes the records, their xfy table and the weighted xfy
// table.
func exportTable(repo storage.TableWriter, name string, header [4]string, records []unit.Record, limit int) error {
	err := repo.WriteUnits(storage.UnitTable{Name: name, Header: header, Records: records})
	if err != nil {
		return err
	}

	xfy := stat.XFY(records)
	if err := repo.WriteXFY(name+xfySuffix, xfy); err != nil {
		return err
	}

	return repo.WriteXFY(name+weightedSuffix, stat.Weighted(xfy, limit))
}
