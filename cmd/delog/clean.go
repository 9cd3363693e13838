package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/delog-tool/delog/pkg/clean"
	"github.com/delog-tool/delog/pkg/enum"
	"github.com/delog-tool/delog/pkg/store"
	"github.com/delog-tool/delog/pkg/strip"
	"github.com/delog-tool/delog/pkg/trigger"
	"github.com/delog-tool/delog/pkg/types"
)

var (
	cleanTriggerNames    []string
	cleanAllTriggers     bool
	cleanTriggersFile    string
	cleanTriggersInclude string
	cleanTriggersExclude string
	cleanConfigPath      string
	cleanNoOrphans       bool
	cleanDryRun          bool
	cleanIncremental     bool
	cleanDatastore       string
	cleanMaxFileSize     int64
	cleanIncludeHidden   bool
	cleanFollowSymlinks  bool
	cleanColor           string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [targets...]",
	Short: "Remove logging statements from files",
	Long: `Remove trigger call statements from the given files and directories.
Targets may also come from a YAML config file. Files are processed one at a
time; only files whose content changed are rewritten, and a missing or
unreadable file is reported and skipped without failing the run.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringSliceVar(&cleanTriggerNames, "trigger", []string{"console.log"}, "Trigger call name (repeatable)")
	cleanCmd.Flags().BoolVar(&cleanAllTriggers, "all-triggers", false, "Use every builtin trigger (whole console family)")
	cleanCmd.Flags().StringVar(&cleanTriggersFile, "triggers-file", "", "Path to custom triggers YAML file")
	cleanCmd.Flags().StringVar(&cleanTriggersInclude, "triggers-include", "", "Include triggers matching regex pattern (comma-separated)")
	cleanCmd.Flags().StringVar(&cleanTriggersExclude, "triggers-exclude", "", "Exclude triggers matching regex pattern (comma-separated)")
	cleanCmd.Flags().StringVar(&cleanConfigPath, "config", "", "YAML config file with target files and triggers")
	cleanCmd.Flags().BoolVar(&cleanNoOrphans, "no-orphan-cleanup", false, "Disable the heuristic orphan-line cleanup pass")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Report what would change without writing")
	cleanCmd.Flags().BoolVar(&cleanIncremental, "incremental", false, "Skip files already recorded clean in the datastore")
	cleanCmd.Flags().StringVar(&cleanDatastore, "datastore", "delog.db", "Run ledger path (used with --incremental)")
	cleanCmd.Flags().Int64Var(&cleanMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to process in directories (bytes)")
	cleanCmd.Flags().BoolVar(&cleanIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	cleanCmd.Flags().BoolVar(&cleanFollowSymlinks, "follow-symlinks", false, "Process file symlinks in directories (directory symlinks are never descended)")
	cleanCmd.Flags().StringVar(&cleanColor, "color", "auto", "Color output: auto, always, never")
}

// cleanConfig is the shape of the --config YAML file.
type cleanConfig struct {
	Files    []string `yaml:"files"`
	Triggers []string `yaml:"triggers"`
}

// styles holds color formatters for per-file reporting.
type styles struct {
	cleaned *color.Color
	missing *color.Color
	failed  *color.Color
	summary *color.Color
}

// newStyles creates color formatters for clean output.
// enabled=false respects --color=never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		cleaned: color.New(color.FgGreen),
		missing: color.New(color.FgYellow),
		failed:  color.New(color.FgRed),
		summary: color.New(color.Bold),
	}

	if !enabled {
		s.cleaned.DisableColor()
		s.missing.DisableColor()
		s.failed.DisableColor()
		s.summary.DisableColor()
	}

	return s
}

// colorEnabled resolves the --color flag against NO_COLOR and whether
// stdout is a terminal.
func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s (want auto, always, or never)", mode)
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	useColor, err := colorEnabled(cleanColor)
	if err != nil {
		return err
	}
	style := newStyles(useColor)

	// Load config file targets and triggers
	targets := args
	var cfg cleanConfig
	if cleanConfigPath != "" {
		data, err := os.ReadFile(cleanConfigPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
		targets = append(targets, cfg.Files...)
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets: pass file or directory arguments, or --config")
	}

	// Assemble triggers
	triggers, err := loadTriggers(cfg.Triggers)
	if err != nil {
		return fmt.Errorf("loading triggers: %w", err)
	}

	stripper, err := strip.New(strip.Config{
		Triggers:      triggers,
		OrphanCleanup: !cleanNoOrphans,
	})
	if err != nil {
		return fmt.Errorf("creating stripper: %w", err)
	}

	// Open the run ledger only when incremental mode asks for it
	var ledger store.Store
	if cleanIncremental {
		ledger, err = store.New(store.Config{Path: cleanDatastore})
		if err != nil {
			return fmt.Errorf("opening datastore: %w", err)
		}
		defer ledger.Close()
	}

	processor, err := clean.New(clean.Config{
		Stripper:    stripper,
		Store:       ledger,
		Incremental: cleanIncremental,
		DryRun:      cleanDryRun,
	})
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	label := triggersLabel(triggers)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	report := func(o clean.Outcome) {
		for _, u := range o.Unbalanced {
			if !quiet {
				fmt.Fprintf(errOut, "warning: %s:%d:%d: unbalanced %s left in place\n",
					o.Path, u.Location.Source.Start.Line, u.Location.Source.Start.Column, u.Trigger)
			}
		}

		switch o.Status {
		case clean.StatusCleaned:
			if quiet {
				return
			}
			suffix := ""
			if cleanDryRun {
				suffix = " (dry run)"
			}
			style.cleaned.Fprintf(out, "Cleaned %s%s\n", o.Path, suffix)
			if verbose {
				fmt.Fprintf(out, "  %d statements removed, %d orphan lines dropped\n", o.Removed, o.Orphans)
			}
		case clean.StatusUnchanged:
			if quiet {
				return
			}
			fmt.Fprintf(out, "No %s statements found in %s\n", label, o.Path)
		case clean.StatusMissing:
			if quiet {
				return
			}
			style.missing.Fprintf(out, "File not found: %s\n", o.Path)
		case clean.StatusSkipped:
			if verbose {
				fmt.Fprintf(out, "Skipped %s\n", o.Path)
			}
		case clean.StatusErrored:
			style.failed.Fprintf(errOut, "Error processing %s: %v\n", o.Path, o.Err)
		}
	}

	// Process each target in argument order; directories walk sequentially.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var total clean.Summary
	for _, target := range targets {
		enumerator := enumeratorFor(target)
		summary, err := processor.Run(ctx, enumerator, report)
		total.Cleaned += summary.Cleaned
		total.Unchanged += summary.Unchanged
		total.Missing += summary.Missing
		total.Skipped += summary.Skipped
		total.Errored += summary.Errored
		total.Statements += summary.Statements
		total.Orphans += summary.Orphans
		if err != nil {
			return fmt.Errorf("processing %s: %w", target, err)
		}
	}

	if !quiet {
		style.summary.Fprintf(out, "\nCleaned %d files total.\n", total.Cleaned)
		if verbose {
			fmt.Fprintf(out, "%d statements removed, %d unchanged, %d missing, %d skipped, %d errors\n",
				total.Statements, total.Unchanged, total.Missing, total.Skipped, total.Errored)
		}
	}

	// Per-file failures are informational; the run itself succeeded.
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// loadTriggers assembles the trigger set from flags and config, then
// applies include/exclude filtering.
func loadTriggers(configNames []string) ([]*types.Trigger, error) {
	loader := trigger.NewLoader()

	var triggers []*types.Trigger
	var err error

	switch {
	case cleanTriggersFile != "":
		triggers, err = loader.LoadTriggerFile(cleanTriggersFile)
		if err != nil {
			return nil, err
		}
	case cleanAllTriggers:
		triggers, err = loader.LoadBuiltinTriggers()
		if err != nil {
			return nil, err
		}
	default:
		names := cleanTriggerNames
		if len(configNames) > 0 {
			names = append(append([]string{}, names...), configNames...)
		}
		seen := make(map[string]bool)
		for _, name := range names {
			t, err := loader.Resolve(name)
			if err != nil {
				return nil, err
			}
			if seen[t.Call] {
				continue
			}
			seen[t.Call] = true
			triggers = append(triggers, t)
		}
	}

	if cleanTriggersInclude != "" || cleanTriggersExclude != "" {
		triggers, err = trigger.Filter(triggers, trigger.FilterConfig{
			Include: trigger.ParsePatterns(cleanTriggersInclude),
			Exclude: trigger.ParsePatterns(cleanTriggersExclude),
		})
		if err != nil {
			return nil, fmt.Errorf("filtering triggers: %w", err)
		}
	}

	if len(triggers) == 0 {
		return nil, fmt.Errorf("no triggers selected")
	}
	return triggers, nil
}

// enumeratorFor picks the enumerator for a target: directories walk,
// everything else (including missing paths, which the processor reports)
// goes through the explicit list.
func enumeratorFor(target string) enum.Enumerator {
	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		return enum.NewFilesystemEnumerator(enum.Config{
			Root:           target,
			IncludeHidden:  cleanIncludeHidden,
			MaxFileSize:    cleanMaxFileSize,
			FollowSymlinks: cleanFollowSymlinks,
		})
	}
	return enum.NewListEnumerator([]string{target})
}

// triggersLabel names the trigger set in per-file messages: the call name
// when there is exactly one trigger, a generic label otherwise.
func triggersLabel(triggers []*types.Trigger) string {
	if len(triggers) == 1 {
		return triggers[0].Call
	}
	return "logging"
}
