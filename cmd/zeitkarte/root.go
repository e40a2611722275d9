package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"zeitkarte/internal/config"
	"zeitkarte/internal/infrastructure"
	"zeitkarte/internal/reader"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zeitkarte",
		Short:         "Normalize attendance exports and report hours, home-office share and deductions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			logger, err = infrastructure.InitializeLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	root.AddCommand(newReportCmd())
	root.AddCommand(newExportCmd())
	return root
}

// loadInput reads one attendance export into a raw string table. Workbooks
// go through sheet discovery; everything else is treated as delimited text.
func loadInput(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return reader.ReadWorkbook(path, cfg.Format.DateColumn)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return reader.ReadDelimited(string(data))
}
