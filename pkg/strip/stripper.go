package strip

import (
	"fmt"

	"github.com/delog-tool/delog/pkg/types"
)

// Config holds stripper configuration.
type Config struct {
	// Triggers are the call statements to remove.
	Triggers []*types.Trigger

	// OrphanCleanup enables the heuristic orphan-line pass after removal.
	OrphanCleanup bool
}

// Stripper removes trigger call statements from text buffers.
type Stripper struct {
	locators      []*Locator
	prefilter     *Prefilter
	orphanCleanup bool
	triggerSetID  string
}

// Result describes one buffer transformation.
type Result struct {
	// Content is the transformed buffer. When nothing matched it aliases
	// the input buffer unchanged.
	Content []byte

	// Removed is the number of call statements spliced out.
	Removed int

	// OrphansDropped is the number of lines removed by the orphan pass.
	OrphansDropped int

	// Unbalanced lists occurrences left in place because their
	// parentheses never balance before end of buffer.
	Unbalanced []Unbalanced
}

// Changed reports whether the buffer was modified.
func (r *Result) Changed() bool {
	return r.Removed > 0 || r.OrphansDropped > 0
}

// New creates a Stripper from config.
func New(cfg Config) (*Stripper, error) {
	if len(cfg.Triggers) == 0 {
		return nil, fmt.Errorf("no triggers provided")
	}

	s := &Stripper{
		prefilter:     NewPrefilter(cfg.Triggers),
		orphanCleanup: cfg.OrphanCleanup,
		triggerSetID:  types.ComputeTriggerSetID(cfg.Triggers),
	}
	for _, t := range cfg.Triggers {
		loc, err := NewLocator(t)
		if err != nil {
			return nil, err
		}
		s.locators = append(s.locators, loc)
	}

	return s, nil
}

// TriggerSetID identifies the trigger set this stripper removes. Ledger
// records carry it so incremental runs only trust records written under
// the same set.
func (s *Stripper) TriggerSetID() string {
	return s.triggerSetID
}

// Strip removes every trigger call statement from content and returns the
// transformed buffer.
//
// Each pass locates all occurrences and splices them out in reverse
// document order, so earlier offsets stay valid while later regions are
// excised. Passes repeat until one removes nothing; the match-count check
// guarantees termination. Occurrences whose parentheses never balance are
// reported in the result and left byte-for-byte in place.
func (s *Stripper) Strip(content []byte) (*Result, error) {
	res := &Result{Content: content}

	if !s.prefilter.MightMatch(content) {
		return res, nil
	}

	cur := content
	for {
		removed := 0
		var unbalanced []Unbalanced

		for _, loc := range s.locators {
			next, n, unb, err := s.removePass(loc, cur)
			if err != nil {
				return nil, err
			}
			cur = next
			removed += n
			unbalanced = append(unbalanced, unb...)
		}

		if removed == 0 {
			// Fixpoint. Every occurrence still present was unbalanced, and
			// its offsets are now final, so this pass's report stands.
			res.Unbalanced = unbalanced
			break
		}
		res.Removed += removed
	}

	if s.orphanCleanup && res.Removed > 0 {
		cur, res.OrphansDropped = FilterOrphans(cur)
	}

	res.Content = cur
	return res, nil
}

// removePass removes every balanced occurrence of one trigger from
// content, last occurrence first. Parenthesis matching runs against the
// buffer as it shrinks: a removal only ever changes bytes at or after the
// occurrence being removed, so the remaining (earlier) offsets hold.
func (s *Stripper) removePass(loc *Locator, content []byte) ([]byte, int, []Unbalanced, error) {
	occs, err := loc.occurrences(content)
	if err != nil {
		return nil, 0, nil, err
	}
	if len(occs) == 0 {
		return content, 0, nil, nil
	}

	original := content
	cur := content
	removed := 0
	var unbalanced []Unbalanced

	for i := len(occs) - 1; i >= 0; i-- {
		occ := occs[i]
		close, ok := matchParen(cur, occ.open)
		if !ok {
			unbalanced = append(unbalanced, Unbalanced{
				Trigger:  loc.Trigger().Call,
				Location: types.LocationFor(original, occ.start, occ.open+1),
			})
			continue
		}

		end := removalEnd(cur, close+1)
		next := make([]byte, 0, len(cur)-(end-occ.start))
		next = append(next, cur[:occ.start]...)
		next = append(next, cur[end:]...)
		cur = next
		removed++
	}

	// Reverse iteration collected unbalanced reports back to front.
	for i, j := 0, len(unbalanced)-1; i < j; i, j = i+1, j-1 {
		unbalanced[i], unbalanced[j] = unbalanced[j], unbalanced[i]
	}

	return cur, removed, unbalanced, nil
}
