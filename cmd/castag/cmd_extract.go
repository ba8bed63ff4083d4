package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/castag/internal/pipeline"
)

func newExtractCmd(a *app) *cobra.Command {
	var src, dst string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Parse a training CSV and cache it as a dataset file",
		Long: `Reads a headerless CSV of "name,l0,l1,l2" rows and writes the parsed
dataset next to it (or to --out). Prints the absolute path written.

Example:
  castag extract -f activities.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pipeline.New(a.newEngine(), nil, a.logger,
				pipeline.WithDatasetName(a.cfg.Data.DatasetName))
			defer p.Close()

			path, err := p.Extract(src, dst)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, path)
			return err
		},
	}

	cmd.Flags().StringVarP(&src, "file", "f", "", "training CSV")
	cmd.Flags().StringVarP(&dst, "out", "o", "", "dataset destination (default: dataset name beside the CSV)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
