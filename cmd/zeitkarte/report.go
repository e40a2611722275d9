package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zeitkarte/internal/config"
	"zeitkarte/internal/dataprocessing"
	"zeitkarte/internal/exporter"
	"zeitkarte/pkg/contracts/domain"
)

func newReportCmd() *cobra.Command {
	var (
		year     int
		month    int
		share    string
		jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Aggregate an attendance export and print the statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if share != "" {
				cfg.Report.ShareVariant = share
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			raw, err := loadInput(args[0])
			if err != nil {
				return err
			}

			res, err := dataprocessing.NewProcessor(cfg, logger).Process(cmd.Context(), raw)
			if err != nil {
				return err
			}

			sel := domain.Selection{Year: year, Month: time.Month(month)}
			stats := res.Aggregate(sel)
			printStats(cmd, stats, cfg.Report.ShareVariant)

			if jsonPath != "" {
				report := exporter.NewStatsReport(res, sel)
				if err := report.WriteJSON(jsonPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nReport geschrieben: %s\n", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "restrict to one year (0 = all)")
	cmd.Flags().IntVar(&month, "month", 0, "restrict to one month 1-12, in every year unless --year is set")
	cmd.Flags().StringVar(&share, "share", "", "home-office share variant: strict or optimistic")
	cmd.Flags().StringVar(&jsonPath, "json", "", "also write the stats report as JSON to this path")
	return cmd
}

func printStats(cmd *cobra.Command, stats domain.AggregateStats, variant string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Tage:               %d\n", stats.Days)
	fmt.Fprintf(out, "Büro-Tage:          %d\n", stats.OfficeDays)
	fmt.Fprintf(out, "Homeoffice-Tage:    %d\n", stats.HomeDays)
	fmt.Fprintf(out, "Krankenstand-Tage:  %d\n", stats.SickDays)
	fmt.Fprintf(out, "Urlaubs-Tage:       %d\n", stats.VacationDays)
	if stats.OtherDays > 0 {
		fmt.Fprintf(out, "Sonstige Tage:      %d\n", stats.OtherDays)
	}
	fmt.Fprintf(out, "Soll-Stunden:       %s\n", hours(stats.TargetHours))
	fmt.Fprintf(out, "Ist-Stunden:        %s\n", hours(stats.ActualHours))

	homeShare := stats.HomeShareStrict
	if variant == config.ShareOptimistic {
		homeShare = stats.HomeShareOptimistic
	}
	fmt.Fprintf(out, "Homeoffice-Anteil:  %s %% (%s)\n", percent(homeShare), variant)
	fmt.Fprintf(out, "Absetzbare Tage:    %d\n", stats.EligibleDays)
	fmt.Fprintf(out, "Absetzbetrag:       %s\n", hours(stats.TaxDeduction))

	mismatched := 0
	for _, m := range stats.Mismatches {
		if m.Mismatch {
			mismatched++
		}
	}
	if mismatched > 0 {
		fmt.Fprintf(out, "Ist-Abweichungen:   %d\n", mismatched)
		for _, m := range stats.Mismatches {
			if m.Mismatch {
				fmt.Fprintf(out, "  %s: erfasst %s, rekonstruiert %s\n",
					m.Date.Format("02-01-2006"), hours(m.Declared), hours(m.Reconstructed))
			}
		}
	}
}

// hours formats a number with the source convention's comma decimal separator.
func hours(v float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

func percent(v float64) string {
	return hours(v * 100)
}
