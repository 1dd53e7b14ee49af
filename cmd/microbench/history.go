package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"microbench/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "history [suite]",
		Short:     "List saved runs",
		Long:      `Lists the runs saved with --save, oldest first. Without a suite every run is listed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"call", "alloc", "pdf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}

			suite := ""
			if len(args) == 1 {
				suite = args[0]
			}

			store, err := historyStore(cfg.History)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.LoadAll(suite)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tSUITE\tTIMESTAMP\tCOMMIT\tRESULTS (ms)")
			for _, run := range runs {
				commit := run.Commit
				if commit == "" {
					commit = "-"
				}
				results := ""
				for i, r := range run.Results {
					if i > 0 {
						results += " "
					}
					results += fmt.Sprintf("%s=%d", r.Name, r.Millis())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(run.ID), run.Suite, run.Timestamp.Local().Format(time.DateTime), commit, results)
			}
			return w.Flush()
		},
	}
}
