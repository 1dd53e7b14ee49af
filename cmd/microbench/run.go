package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"microbench/internal/benchmark"
	"microbench/internal/config"
	"microbench/internal/db"
	"microbench/internal/telemetry"
	"microbench/internal/ui"

	"github.com/spf13/cobra"
)

// ErrRegression is returned when a trial slowed down past the fail threshold.
var ErrRegression = errors.New("performance regression detected")

// Replaced in tests.
var (
	newStoreFunc = db.NewStore
	execCommand  = exec.Command
	stdoutIsTTY  = func() bool { return ui.IsTerminal(os.Stdout) }
)

// suiteRun is one invocation of a benchmark suite.
type suiteRun struct {
	Name     string
	Baseline string
	Trials   []benchmark.Trial
}

// runSuite times the trials, prints the report and handles history and
// metrics export.
func runSuite(cmd *cobra.Command, cfg *config.Config, s suiteRun) error {
	format, err := benchmark.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if err := benchmark.CheckBaseline(s.Trials, s.Baseline); err != nil {
		return err
	}

	logger := slog.Default().With("suite", s.Name)
	metrics := telemetry.NewMetrics()
	h := benchmark.NewHarness(
		benchmark.WithWarmup(cfg.Warmup),
		benchmark.WithGarbageCollection(cfg.GCBetweenTrials),
		benchmark.WithObserver(metrics),
		benchmark.WithLogger(logger),
	)

	logger.Info("running suite", "trials", len(s.Trials), "baseline", s.Baseline)
	report, err := h.Run(cmd.Context(), s.Name, s.Trials)
	if err != nil {
		return err
	}
	report.Baseline = s.Baseline

	if err := printReport(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}

	if err := metrics.ObserveReport(report); err != nil {
		return err
	}
	if err := exportMetrics(metrics, cfg.Metrics); err != nil {
		return err
	}

	if !cfg.History.Save && !cfg.History.Compare {
		return nil
	}
	return handleHistory(cmd, cfg.History, report)
}

func printReport(w io.Writer, r *benchmark.Report, format benchmark.Format) error {
	tty := stdoutIsTTY()

	if format == benchmark.FormatMarkdown && tty {
		norm, err := r.Normalize()
		if err != nil {
			return err
		}
		out, err := ui.RenderMarkdown(benchmark.Markdown(r, norm))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	rd := benchmark.Renderer{Format: format}
	if tty {
		rd.Heading = ui.Heading
	}
	return rd.Render(w, r)
}

func exportMetrics(m *telemetry.Metrics, cfg config.MetricsConfig) error {
	if cfg.Textfile != "" {
		if err := m.WriteTextfile(cfg.Textfile); err != nil {
			return err
		}
		slog.Info("metrics written", "path", cfg.Textfile)
	}
	if cfg.PushURL != "" {
		if err := m.Push(cfg.PushURL, cfg.Job); err != nil {
			return err
		}
		slog.Info("metrics pushed", "url", cfg.PushURL, "job", cfg.Job)
	}
	return nil
}

func historyStore(cfg config.HistoryConfig) (benchmark.Store, error) {
	store, err := newStoreFunc(db.StoreConfig{Type: cfg.Type, ConnectionString: cfg.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

func handleHistory(cmd *cobra.Command, cfg config.HistoryConfig, report *benchmark.Report) error {
	store, err := historyStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run := benchmark.NewRun(report, gitCommit())
	out := cmd.OutOrStdout()

	var regressions []benchmark.Comparison
	if cfg.Compare {
		prev, err := store.LoadLatest(report.Suite)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if prev == nil {
			fmt.Fprintf(out, "\nNo previous %s run to compare against.\n", report.Suite)
		} else {
			comps := benchmark.Compare(*prev, run)
			printComparison(out, *prev, run, comps, cfg.Threshold)
			if cfg.FailThreshold > 0 {
				regressions = benchmark.Regressions(comps, cfg.FailThreshold)
			}
		}
	}

	if cfg.Save {
		if err := store.Save(run); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintf(out, "\nRun %s saved to %s history\n", run.ID, cfg.Type)
	}

	if len(regressions) > 0 {
		names := make([]string, len(regressions))
		for i, c := range regressions {
			names[i] = c.String()
		}
		return fmt.Errorf("%w (threshold %.2f%%): %s", ErrRegression, cfg.FailThreshold, strings.Join(names, ", "))
	}
	return nil
}

func printComparison(w io.Writer, prev, curr benchmark.Run, comps []benchmark.Comparison, threshold float64) {
	fmt.Fprintf(w, "\nComparison with run %s", shortID(prev.ID))
	if prev.Commit != "" {
		fmt.Fprintf(w, " (commit %s)", prev.Commit)
	}
	fmt.Fprintln(w)

	compared := make(map[string]bool, len(comps))
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "TRIAL\tPREV (ms)\tCURR (ms)\tDIFF\tSTATUS")
	for _, c := range comps {
		compared[c.Name] = true
		status := ui.StatusSame
		switch {
		case c.ElapsedDiff > threshold:
			status = ui.StatusRegression
		case c.ElapsedDiff < -threshold:
			status = ui.StatusImproved
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+.2f%%\t%s\n", c.Name, c.Prev.Millis(), c.Curr.Millis(), c.ElapsedDiff, ui.Status(status))
	}
	for _, r := range curr.Results {
		if !compared[r.Name] {
			fmt.Fprintf(tw, "%s\t-\t%d\t-\t%s\n", r.Name, r.Millis(), ui.Status(ui.StatusNew))
		}
	}
	tw.Flush()
}

// gitCommit returns the short hash of HEAD, or "" outside a repository.
func gitCommit() string {
	out, err := execCommand("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
