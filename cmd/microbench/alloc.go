package main

import (
	"microbench/internal/config"
	"microbench/internal/pool"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAllocCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Time list node allocation through a pool, new and sync.Pool",
		Long: `Appends --count ints to a linked list whose nodes come from a chunked
pool allocator, from the runtime allocator and from a sync.Pool. The list
is cleared and the allocator purged after each trial, outside the timed
section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}

			return runSuite(cmd, cfg, suiteRun{
				Name:     "alloc",
				Baseline: cfg.Alloc.Baseline,
				Trials: pool.Suite(pool.Config{
					Count:    cfg.Alloc.Count,
					NextSize: cfg.Alloc.NextSize,
					MaxSize:  cfg.Alloc.MaxSize,
				}),
			})
		},
	}

	cmd.Flags().Int("count", pool.DefaultCount, "Elements appended by each trial")
	cmd.Flags().Int("next-size", 64, "Nodes in the first pool chunk")
	cmd.Flags().Int("max-size", 128, "Upper bound on nodes per pool chunk")
	cmd.Flags().String("baseline", pool.FastPoolAllocator, "Trial the others are normalized against")
	bindFlags(v, cmd.Flags(), map[string]string{
		"alloc.count":     "count",
		"alloc.next_size": "next-size",
		"alloc.max_size":  "max-size",
		"alloc.baseline":  "baseline",
	})
	return cmd
}
