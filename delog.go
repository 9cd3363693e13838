// Package delog removes logging call statements from source files.
//
// Delog locates invocations of a trigger call such as console.log,
// removes the balanced call expression together with trailing whitespace
// and an optional statement terminator, and repeats until no occurrence
// remains. An optional heuristic pass drops orphaned fragments of
// multi-line literal arguments left behind by earlier hand edits.
//
// # Basic Usage
//
// Create a cleaner with the default trigger (console.log) and clean a
// buffer:
//
//	cleaner, err := delog.NewCleaner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cleaned, result, err := cleaner.CleanString(`console.log("debug"); run();`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d statements removed\n", result.Removed)
//
// # Custom Triggers
//
// Any qualified call name works as a trigger:
//
//	cleaner, err := delog.NewCleaner(delog.WithTriggerNames("logger.debug", "console.log"))
//
// # Files
//
// CleanFile rewrites a file in place, only when its content changed:
//
//	outcome := cleaner.CleanFile("src/app.ts")
//	if outcome.Status == delog.StatusCleaned {
//	    fmt.Printf("removed %d statements from %s\n", outcome.Removed, outcome.Path)
//	}
package delog

import (
	"context"
	"fmt"

	"github.com/delog-tool/delog/pkg/clean"
	"github.com/delog-tool/delog/pkg/strip"
	"github.com/delog-tool/delog/pkg/trigger"
	"github.com/delog-tool/delog/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/delog-tool/delog" without subpackages.
type (
	// Trigger identifies a call statement to remove.
	Trigger = types.Trigger

	// Result describes one buffer transformation.
	Result = strip.Result

	// Unbalanced describes a trigger occurrence left in place because its
	// parentheses never balance.
	Unbalanced = strip.Unbalanced

	// Outcome reports what happened to one file.
	Outcome = clean.Outcome
)

// Re-export per-file outcome statuses.
const (
	StatusCleaned   = clean.StatusCleaned
	StatusUnchanged = clean.StatusUnchanged
	StatusMissing   = clean.StatusMissing
	StatusSkipped   = clean.StatusSkipped
	StatusErrored   = clean.StatusErrored
)

// Cleaner removes trigger call statements from buffers and files.
type Cleaner struct {
	stripper *strip.Stripper
	config   *cleanerConfig
}

// cleanerConfig holds cleaner configuration.
type cleanerConfig struct {
	triggers      []*types.Trigger
	triggerNames  []string
	allBuiltin    bool
	orphanCleanup bool
}

// Option configures a Cleaner.
type Option func(*cleanerConfig)

// WithTriggers uses the given triggers instead of the default.
func WithTriggers(triggers []*Trigger) Option {
	return func(c *cleanerConfig) {
		c.triggers = triggers
	}
}

// WithTriggerNames selects triggers by name. Builtin triggers match by
// ID, name, or call; unknown names become ad-hoc triggers for that call.
func WithTriggerNames(names ...string) Option {
	return func(c *cleanerConfig) {
		c.triggerNames = names
	}
}

// WithAllBuiltinTriggers uses every builtin trigger (the whole console
// family) instead of console.log alone.
func WithAllBuiltinTriggers() Option {
	return func(c *cleanerConfig) {
		c.allBuiltin = true
	}
}

// WithOrphanCleanup toggles the heuristic orphan-line pass that runs
// after call removal. Enabled by default; it is approximate and can drop
// legitimate lines of the same shape, so callers may disable it.
func WithOrphanCleanup(enabled bool) Option {
	return func(c *cleanerConfig) {
		c.orphanCleanup = enabled
	}
}

// NewCleaner creates a new Cleaner with the given options.
//
// By default the cleaner:
//   - Removes console.log statements only
//   - Runs the orphan-line cleanup pass after removal
func NewCleaner(opts ...Option) (*Cleaner, error) {
	config := &cleanerConfig{
		orphanCleanup: true,
	}

	for _, opt := range opts {
		opt(config)
	}

	// Resolve triggers if not provided directly
	if config.triggers == nil {
		loader := trigger.NewLoader()
		switch {
		case config.allBuiltin:
			triggers, err := loader.LoadBuiltinTriggers()
			if err != nil {
				return nil, fmt.Errorf("loading builtin triggers: %w", err)
			}
			config.triggers = triggers
		case len(config.triggerNames) > 0:
			for _, name := range config.triggerNames {
				t, err := loader.Resolve(name)
				if err != nil {
					return nil, fmt.Errorf("resolving trigger %q: %w", name, err)
				}
				config.triggers = append(config.triggers, t)
			}
		default:
			t, err := loader.Resolve("console.log")
			if err != nil {
				return nil, fmt.Errorf("loading default trigger: %w", err)
			}
			config.triggers = []*types.Trigger{t}
		}
	}

	stripper, err := strip.New(strip.Config{
		Triggers:      config.triggers,
		OrphanCleanup: config.orphanCleanup,
	})
	if err != nil {
		return nil, fmt.Errorf("creating stripper: %w", err)
	}

	return &Cleaner{
		stripper: stripper,
		config:   config,
	}, nil
}

// CleanString cleans a string and returns the cleaned content alongside
// the transformation result.
func (c *Cleaner) CleanString(content string) (string, *Result, error) {
	result, err := c.CleanBytes([]byte(content))
	if err != nil {
		return "", nil, err
	}
	return string(result.Content), result, nil
}

// CleanBytes cleans a raw buffer.
func (c *Cleaner) CleanBytes(content []byte) (*Result, error) {
	return c.stripper.Strip(content)
}

// CleanFile reads path, cleans it, and writes it back in place only when
// the content changed. Missing paths and I/O failures are reported in the
// outcome, never panicked or escalated.
func (c *Cleaner) CleanFile(path string) Outcome {
	return c.CleanFileContext(context.Background(), path)
}

// CleanFileContext is CleanFile with a caller-supplied context.
func (c *Cleaner) CleanFileContext(ctx context.Context, path string) Outcome {
	processor, err := clean.New(clean.Config{Stripper: c.stripper})
	if err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: err}
	}
	return processor.ProcessFile(ctx, path)
}

// Triggers returns a copy of the cleaner's triggers.
func (c *Cleaner) Triggers() []*Trigger {
	triggers := make([]*Trigger, len(c.config.triggers))
	copy(triggers, c.config.triggers)
	return triggers
}

// OrphanCleanupEnabled reports whether the orphan-line pass is active.
func (c *Cleaner) OrphanCleanupEnabled() bool {
	return c.config.orphanCleanup
}

// LoadTriggersFromFile loads trigger definitions from a YAML file.
// Use this with WithTriggers to create a cleaner with custom triggers.
func LoadTriggersFromFile(path string) ([]*Trigger, error) {
	loader := trigger.NewLoader()
	return loader.LoadTriggerFile(path)
}

// LoadBuiltinTriggers returns all builtin trigger definitions.
func LoadBuiltinTriggers() ([]*Trigger, error) {
	loader := trigger.NewLoader()
	return loader.LoadBuiltinTriggers()
}
