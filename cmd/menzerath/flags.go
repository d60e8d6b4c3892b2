package main

import (
	"github.com/revelaction/menzerath/stat"
	"github.com/urfave/cli/v2"
)

const defaultOut = "out"

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Value:   defaultOut,
		Usage:   "table repository: a directory or a SQLite file (.db, .sqlite)",
		EnvVars: []string{"MENZERATH_OUT"},
	}
}

func dictionaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "hzinfo",
			Usage:   "BLCU character information file (hzinfo.txt)",
			EnvVars: []string{"MENZERATH_HZINFO"},
		},
		&cli.StringFlag{
			Name:    "ids",
			Usage:   "CHISE IDS file for components (IDS-UCS-Basic.txt), strokes stay from --hzinfo",
			EnvVars: []string{"MENZERATH_IDS"},
		},
		&cli.BoolFlag{
			Name:  "maximal",
			Usage: "decompose components recursively",
		},
	}
}

func dictionaryOptions(c *cli.Context) DictionaryOptions {
	return DictionaryOptions{
		HZInfo:  c.String("hzinfo"),
		IDS:     c.String("ids"),
		Maximal: c.Bool("maximal"),
	}
}

func analysisFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "analysis",
		Aliases: []string{"a"},
		Usage:   "run only the named analyses (repeatable)",
	}
}

func weightLimitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "weight-limit",
		Value:   stat.DefaultWeightLimit,
		Usage:   "frequency below which xfy rows are merged in weighted tables",
		EnvVars: []string{"MENZERATH_WEIGHT_LIMIT"},
	}
}

func colorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "color",
		Usage: "colorize output",
	}
}
