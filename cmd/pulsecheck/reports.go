package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/service"
	"github.com/fernwell/pulsecheck/internal/storage"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Work with persisted assessment reports",
	}
	cmd.AddCommand(reportsListCmd())
	cmd.AddCommand(reportsShowCmd())
	return cmd
}

func reportsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(store)

			summaries, err := store.ListReports(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Println("No reports saved yet. Run 'pulsecheck assess --save' to create one.") //nolint:forbidigo // User-facing output
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUnit\tScore\tGrade\tPercentile\tGenerated")
			for _, s := range summaries {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\t%d\t%s\n",
					s.ID, s.Unit, s.Score, s.Grade, s.Percentile,
					s.GeneratedAt.Format("2006-01-02 15:04"))
			}
			if err := w.Flush(); err != nil {
				common.LogError(err, "failed to flush report table", nil)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of reports to list")
	return cmd
}

func reportsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a persisted report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(store)

			report, err := store.GetReport(ctx, id)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}
}

func openStore() (service.ReportStore, error) {
	store, err := storage.NewSQLiteStorage(databasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}
	return store, nil
}

func closeStore(store service.ReportStore) {
	if err := store.Close(); err != nil {
		common.LogError(err, "failed to close storage", nil)
	}
}
