package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/downtown-busy/internal/datematch"
	"github.com/pfrederiksen/downtown-busy/internal/logger"
	"github.com/pfrederiksen/downtown-busy/internal/metrics"
	"github.com/pfrederiksen/downtown-busy/internal/scraper"
	"github.com/pfrederiksen/downtown-busy/internal/status"
	"github.com/pfrederiksen/downtown-busy/internal/storage"
	"github.com/pfrederiksen/downtown-busy/internal/venue"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig      string
	flagOutput      string
	flagConcurrency int
	flagFormat      string
	flagMetricsFile string
	flagVerbose     bool
)

// fs is the filesystem used for the venue config and the snapshot
var fs = afero.NewOsFs()

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downtown-busy",
		Short: "Check whether downtown venues have events today",
		Long: `Checks each configured venue's event page for today's date (US Eastern)
and writes a status snapshot: busy when two or more venues have an event,
probably when one does, not busy otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	cmd.PersistentFlags().StringVar(&flagOutput, "output", storage.DefaultPath, "Path of the status snapshot")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.Flags().StringVar(&flagConfig, "config", venue.DefaultPath, "Path of the venue list (JSON or YAML)")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", status.DefaultConcurrency, "Number of venues checked at once")
	cmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file (textfile collector)")

	cmd.AddCommand(newShowCmd())

	return cmd
}

// setupLogging installs the default logger for this run
func setupLogging() {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}

	logger.SetDefault(logger.New(level, os.Stderr).With(logger.Fields{"run_id": uuid.NewString()}))
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	setupLogging()

	venues, err := venue.Load(fs, flagConfig)
	if err != nil {
		return fmt.Errorf("loading venues: %w", err)
	}

	store, err := storage.New(fs, flagOutput)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	loc, err := datematch.LoadEastern()
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}
	today := datematch.Today(time.Now(), loc)

	logger.Debug("Checking venues", logger.Fields{
		"venues": len(venues),
		"date":   today.Format(status.DateLayout),
		"config": flagConfig,
	})

	rec := metrics.New()
	checker := status.NewChecker(scraper.NewProber(scraper.NewFetcher()), flagConcurrency, rec)
	snapshot := checker.Check(cmd.Context(), venues, today)

	previous, err := store.Load()
	if err != nil {
		logger.Debug("No previous snapshot", logger.Fields{"path": store.Path(), "reason": err.Error()})
	}

	if err := store.Write(snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	logger.Info("Status written", logger.Fields{
		"path":        store.Path(),
		"event_count": snapshot.EventCount,
		"busy":        snapshot.Busy,
	})
	logChanges(status.Diff(previous, snapshot))

	if flagMetricsFile != "" {
		if err := rec.WriteTextfile(flagMetricsFile); err != nil {
			logger.Warn("Writing metrics failed", logger.Fields{"path": flagMetricsFile}, err)
		}
	}

	result := &OutputResult{
		Status:   snapshot.Level(),
		Summary:  snapshot.Summary(),
		Path:     store.Path(),
		Snapshot: snapshot,
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// logChanges reports a status change since the previous run
func logChanges(diff *status.DiffResult) {
	if !diff.Changed() {
		return
	}

	names := func(refs []status.VenueRef) []string {
		out := make([]string, len(refs))
		for i, r := range refs {
			out[i] = r.Name
		}
		return out
	}

	logger.Info("Status changed", logger.Fields{
		"from":    diff.From,
		"to":      diff.To,
		"added":   names(diff.Added),
		"removed": names(diff.Removed),
		"new_day": diff.NewDay,
	})
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the last written status snapshot",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	store, err := storage.New(fs, flagOutput)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	snapshot, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), snapshot)
	}

	loc, err := datematch.LoadEastern()
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}
	return writeShow(cmd.OutOrStdout(), snapshot, loc)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
