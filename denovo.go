package main

import (
	"log"
	"os"
	"slices"
	"strings"

	"github.com/nvnieuwk/denovo/denovo_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "denovo",
		Usage:           "A tool to extract de novo mutation features from the trios in a VCF file",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The location to the output TSV file, defaults to stdout",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Configuration file (YAML) with the pseudoautosomal regions and the INFO fields to export",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "build",
				Aliases:  []string{"b"},
				Usage:    "The genome build of the default pseudoautosomal regions. Must be one of: " + strings.Join(denovo_api.Builds, ", "),
				Category: "Optional",
				Action: func(c *cli.Context, input string) error {
					if slices.Contains(denovo_api.Builds, input) {
						return nil
					}
					return cli.Exit("Invalid build '"+input+"', must be one of: "+strings.Join(denovo_api.Builds, ", "), 1)
				},
			},
			&cli.StringFlag{
				Name:     "arrow",
				Aliases:  []string{"a"},
				Usage:    "Also write the features to this Arrow IPC file",
				Category: "Optional",
			},
			&cli.IntFlag{
				Name:     "arrow-chunk-size",
				Usage:    "The number of rows per Arrow record batch",
				Value:    1000,
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "verbose",
				Usage:    "Report every skipped variant and trio",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "mute-warnings",
				Aliases:  []string{"mw"},
				Usage:    "Only report errors",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "ped",
				Aliases:  []string{"p"},
				Usage:    "The PED file describing the families in the VCF file",
				Required: true,
				Category: "Required",
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "The input VCF file, bgzipped when it ends with .gz",
				Required: true,
				Category: "Required",
			},
		},
		Action: func(Cctx *cli.Context) error {
			config, err := denovo_api.ReadConfig(Cctx)
			if err != nil {
				return err
			}
			return denovo_api.Execute(Cctx, config) // Extract the features and write them to the output file
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
