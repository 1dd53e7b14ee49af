package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"microbench/internal/config"
	"microbench/internal/telemetry"
	"microbench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit

// isInteractive reports whether the picker may prompt. Replaced in tests.
var isInteractive = func() bool {
	return ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout)
}

// Execute builds the command tree and runs it. Interrupts cancel the
// context, which aborts the run before the next trial.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "microbench",
		Short: "Compare the cost of alternative ways to do one basic operation",
		Long: `microbench times alternative implementations of the same operation and
reports their wall-clock cost, raw and normalized against a baseline.

Suites:
  call   static dispatch, interface calls and function values
  alloc  pooled, native and sync.Pool list node allocation
  pdf    page text extraction with two PDF libraries`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, cfgFile); err != nil {
				return err
			}
			telemetry.InitLogger(cmd.ErrOrStderr(), v.GetBool("verbose"), v.GetString("log_file"))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-file", "", "Also write logs to this file")
	pf.StringP("format", "o", "text", "Report format: text, json, yaml or markdown")
	pf.Int("warmup", 0, "Untimed calls of each operation before timing")
	pf.Bool("gc", true, "Force a garbage collection between trials")
	pf.Bool("save", false, "Save the run to history")
	pf.Bool("compare", false, "Compare with the latest saved run of the suite")
	pf.Float64("threshold", 10.0, "Percentage change marked as slower or faster")
	pf.Float64("fail-threshold", 0, "Fail when a trial is slower by more than this percentage (0 disables)")
	pf.String("history-type", "json", "History store: json, sqlite or postgres")
	pf.String("history-path", "", "History file path or postgres connection string")
	pf.String("metrics-textfile", "", "Write Prometheus metrics to this file")
	pf.String("metrics-push-url", "", "Push metrics to this Pushgateway")
	pf.String("metrics-job", "microbench", "Pushgateway job name")

	bindFlags(v, pf, map[string]string{
		"verbose":                "verbose",
		"log_file":               "log-file",
		"format":                 "format",
		"warmup":                 "warmup",
		"gc_between_trials":      "gc",
		"history.save":           "save",
		"history.compare":        "compare",
		"history.threshold":      "threshold",
		"history.fail_threshold": "fail-threshold",
		"history.type":           "history-type",
		"history.path":           "history-path",
		"metrics.textfile":       "metrics-textfile",
		"metrics.push_url":       "metrics-push-url",
		"metrics.job":            "metrics-job",
	})

	suites := []*cobra.Command{newCallCmd(v), newAllocCmd(v), newPDFCmd(v)}
	root.AddCommand(suites...)
	root.AddCommand(newHistoryCmd(v))

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return cmd.Help()
		}
		return runInteractive(cmd, suites)
	}
	return root
}

// bindFlags binds each config key to the flag of the given name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if f := fs.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// runInteractive lets the user pick a suite and runs it with its defaults.
func runInteractive(cmd *cobra.Command, suites []*cobra.Command) error {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name()
	}

	choice, err := ui.SelectSuite(names)
	if err != nil {
		return err
	}
	for _, s := range suites {
		if s.Name() == choice {
			s.SetContext(cmd.Context())
			s.SetOut(cmd.OutOrStdout())
			s.SetErr(cmd.ErrOrStderr())
			return s.RunE(s, nil)
		}
	}
	return fmt.Errorf("unknown suite %q", choice)
}
