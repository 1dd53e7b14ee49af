package main

import (
	"log/slog"

	"microbench/internal/config"
	"microbench/internal/dispatch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCallCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Time static dispatch, interface calls and function values",
		Long: `Calls the same method through five call sites, each in a loop:
a direct call, a method value on the concrete type, an interface call, a
function value bound once outside the loop and one rebound on every
iteration. All trials share one accumulator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}

			acc := dispatch.NewAccumulator(0)
			err = runSuite(cmd, cfg, suiteRun{
				Name:     "call",
				Baseline: cfg.Call.Baseline,
				Trials:   dispatch.Suite(acc, cfg.Call.Loops),
			})
			if err != nil {
				return err
			}
			slog.Debug("accumulator", "value", acc.Value())
			return nil
		},
	}

	cmd.Flags().Int("loops", dispatch.DefaultLoops, "Calls made by each trial")
	cmd.Flags().String("baseline", dispatch.DirectCall, "Trial the others are normalized against")
	bindFlags(v, cmd.Flags(), map[string]string{
		"call.loops":    "loops",
		"call.baseline": "baseline",
	})
	return cmd
}
