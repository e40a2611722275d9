package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zeitkarte/internal/dataprocessing"
	"zeitkarte/internal/exporter"
)

func newExportCmd() *cobra.Command {
	var (
		columns []int
		pair    int
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render the per-day table as tab-separated text or a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadInput(args[0])
			if err != nil {
				return err
			}

			res, err := dataprocessing.NewProcessor(cfg, logger).Process(cmd.Context(), raw)
			if err != nil {
				return err
			}

			m := exporter.DayMatrix(res)
			switch {
			case len(columns) > 0:
				m = m.Columns(columns...)
			case pair >= 0:
				m = m.AdjacentPair(pair)
			}

			if csvPath != "" {
				w := exporter.NewCSVWriter(logger)
				return w.WriteMatrix(csvPath, m, exporter.WriteOptions{BOMPrefix: true})
			}

			fmt.Fprintln(cmd.OutOrStdout(), m.TSV())
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&columns, "columns", nil, "column subset to export, zero-based indices")
	cmd.Flags().IntVar(&pair, "pair", -1, "export the two adjacent columns starting at this index")
	cmd.Flags().StringVar(&csvPath, "out", "", "write a CSV file instead of printing tab-separated text")
	return cmd
}
