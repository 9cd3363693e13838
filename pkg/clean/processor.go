// Package clean drives the per-file read-transform-write cycle.
package clean

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/delog-tool/delog/pkg/enum"
	"github.com/delog-tool/delog/pkg/store"
	"github.com/delog-tool/delog/pkg/strip"
	"github.com/delog-tool/delog/pkg/types"
)

// Status classifies a per-file outcome.
type Status string

const (
	// StatusCleaned means the file changed and was written back.
	StatusCleaned Status = "cleaned"
	// StatusUnchanged means no trigger statement was found; the file was
	// not rewritten.
	StatusUnchanged Status = "unchanged"
	// StatusMissing means the configured path does not exist.
	StatusMissing Status = "missing"
	// StatusSkipped means the file was not scanned (binary content, or
	// already recorded clean in incremental mode).
	StatusSkipped Status = "skipped"
	// StatusErrored means a read or write failure; the file is treated as
	// unmodified and the run continues.
	StatusErrored Status = "errored"
)

// Outcome reports what happened to one file.
type Outcome struct {
	Path       string
	Status     Status
	Removed    int
	Orphans    int
	Unbalanced []strip.Unbalanced
	Err        error
}

// Summary aggregates a run's outcomes.
type Summary struct {
	Cleaned    int
	Unchanged  int
	Missing    int
	Skipped    int
	Errored    int
	Statements int // total call statements removed
	Orphans    int // total orphan lines dropped
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusCleaned:
		s.Cleaned++
	case StatusUnchanged:
		s.Unchanged++
	case StatusMissing:
		s.Missing++
	case StatusSkipped:
		s.Skipped++
	case StatusErrored:
		s.Errored++
	}
	s.Statements += o.Removed
	s.Orphans += o.Orphans
}

// Config holds processor configuration.
type Config struct {
	// Stripper performs the buffer transformation. Required.
	Stripper *strip.Stripper

	// Store is an optional run ledger. When set, every completed file is
	// recorded with the content hash of its post-cleanup state.
	Store store.Store

	// Incremental skips files whose current content hash is already
	// recorded in the ledger. Requires Store.
	Incremental bool

	// DryRun reports what would change without writing anything.
	DryRun bool
}

// Processor applies the stripper to files one at a time.
type Processor struct {
	config Config
}

// New creates a Processor from config.
func New(cfg Config) (*Processor, error) {
	if cfg.Stripper == nil {
		return nil, fmt.Errorf("stripper is required")
	}
	if cfg.Incremental && cfg.Store == nil {
		return nil, fmt.Errorf("incremental mode requires a store")
	}
	return &Processor{config: cfg}, nil
}

// Run processes every file the enumerator yields, strictly in order, and
// reports each outcome through the callback as it completes. Per-file
// failures (missing paths, read/write errors) land in their Outcome and
// never abort the run; only context cancellation or an enumeration
// failure does.
func (p *Processor) Run(ctx context.Context, e enum.Enumerator, report func(Outcome)) (Summary, error) {
	var summary Summary

	err := e.Enumerate(ctx, func(path string) error {
		outcome := p.ProcessFile(ctx, path)
		summary.add(outcome)
		if report != nil {
			report(outcome)
		}
		return nil
	})

	return summary, err
}

// ProcessFile runs the read-transform-write cycle for a single file.
func (p *Processor) ProcessFile(ctx context.Context, path string) Outcome {
	select {
	case <-ctx.Done():
		return Outcome{Path: path, Status: StatusErrored, Err: ctx.Err()}
	default:
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Outcome{Path: path, Status: StatusMissing}
	}
	if err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: fmt.Errorf("reading file: %w", err)}
	}

	if enum.IsBinary(content) {
		return Outcome{Path: path, Status: StatusSkipped}
	}

	if p.config.Incremental {
		exists, err := p.config.Store.CleanExists(path, types.ComputeBlobID(content), p.config.Stripper.TriggerSetID())
		if err != nil {
			return Outcome{Path: path, Status: StatusErrored, Err: fmt.Errorf("checking ledger: %w", err)}
		}
		if exists {
			return Outcome{Path: path, Status: StatusSkipped}
		}
	}

	result, err := p.config.Stripper.Strip(content)
	if err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: err}
	}

	outcome := Outcome{
		Path:       path,
		Removed:    result.Removed,
		Orphans:    result.OrphansDropped,
		Unbalanced: result.Unbalanced,
	}

	if !result.Changed() {
		outcome.Status = StatusUnchanged
		p.record(path, content, result)
		return outcome
	}

	if !p.config.DryRun {
		if err := writeFileAtomic(path, result.Content, info.Mode().Perm()); err != nil {
			outcome.Status = StatusErrored
			outcome.Err = fmt.Errorf("writing file: %w", err)
			return outcome
		}
	}

	outcome.Status = StatusCleaned
	p.record(path, result.Content, result)
	return outcome
}

// record stores the post-cleanup state in the ledger, if one is attached.
// Ledger failures are swallowed: the file itself was handled, and a
// ledger miss only costs a rescan next run.
func (p *Processor) record(path string, content []byte, result *strip.Result) {
	if p.config.Store == nil || p.config.DryRun {
		return
	}
	_ = p.config.Store.AddRecord(&store.Record{
		Path:       path,
		BlobID:     types.ComputeBlobID(content),
		TriggerSet: p.config.Stripper.TriggerSetID(),
		Removed:    result.Removed,
		Orphans:    result.OrphansDropped,
		CleanedAt:  time.Now(),
	})
}

// writeFileAtomic replaces path's content via a same-directory temp file
// and rename, so a failed write never leaves a truncated file behind.
func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".delog-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
