package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Trigger identifies a call statement to remove.
type Trigger struct {
	ID          string   // e.g., "js.console.log"
	Name        string   // human-readable name
	Call        string   // literal call name the locator searches for, e.g. "console.log"
	Description string   // optional
	Keywords    []string // keywords for Aho-Corasick prefiltering; defaults to Call
	Examples    []string // statements the trigger should remove
}

// NewTrigger builds an ad-hoc trigger for a bare call name such as
// "console.log" or "logger.debug".
func NewTrigger(call string) *Trigger {
	return &Trigger{
		ID:       "adhoc." + call,
		Name:     call,
		Call:     call,
		Keywords: []string{call},
	}
}

// Validate checks that the trigger has a usable call name.
func (t *Trigger) Validate() error {
	if strings.TrimSpace(t.Call) == "" {
		return fmt.Errorf("trigger %q: call name is required", t.ID)
	}
	if strings.ContainsAny(t.Call, "()") {
		return fmt.Errorf("trigger %q: call name must not include parentheses", t.ID)
	}
	return nil
}

// EffectiveKeywords returns the prefilter keywords, falling back to the
// call name when none are declared.
func (t *Trigger) EffectiveKeywords() []string {
	if len(t.Keywords) > 0 {
		return t.Keywords
	}
	return []string{t.Call}
}

// ComputeStructuralID computes SHA-1 of the call name. Two triggers with
// the same call name behave identically regardless of metadata.
func (t *Trigger) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(t.Call))
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeTriggerSetID identifies a set of triggers by the sorted
// structural IDs of its members, independent of order and metadata. The
// run ledger keys on it so that records written under one trigger set are
// never trusted by a run using a different one.
func ComputeTriggerSetID(triggers []*Trigger) string {
	ids := make([]string, 0, len(triggers))
	for _, t := range triggers {
		ids = append(ids, t.ComputeStructuralID())
	}
	sort.Strings(ids)

	h := sha1.New()
	for _, id := range ids {
		h.Write([]byte(id))
	}
	return hex.EncodeToString(h.Sum(nil))
}
