package strip

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/delog-tool/delog/pkg/types"
)

// ErrUnbalanced reports a trigger occurrence whose opening parenthesis has
// no matching close before end of buffer. The occurrence is left in place.
var ErrUnbalanced = errors.New("no matching closing parenthesis")

// occurrence is a located trigger call: the offset of the call name and
// the offset of its opening parenthesis. Whether the parentheses balance
// is decided at removal time, against the current buffer.
type occurrence struct {
	start int
	open  int
}

// Unbalanced describes a trigger occurrence that could not be removed
// because its parentheses never balance.
type Unbalanced struct {
	Trigger  string
	Location types.Location
}

func (u Unbalanced) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %v",
		u.Trigger, u.Location.Source.Start.Line, u.Location.Source.Start.Column, ErrUnbalanced)
}

// Locator finds occurrences of one trigger call in a buffer.
//
// The scan is purely textual: parentheses inside string or comment
// literals are counted as structural. That mirrors the deployed cleanup
// behavior and is the tool's documented limitation.
type Locator struct {
	trigger *types.Trigger
	re      *regexp2.Regexp
}

// NewLocator compiles the occurrence pattern for a trigger: the literal
// call name, optional whitespace, then an opening parenthesis.
func NewLocator(t *types.Trigger) (*Locator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	pattern := regexp.QuoteMeta(t.Call) + `\s*\(`
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern for trigger %s: %w", t.ID, err)
	}
	// Guard against pathological inputs; the pattern itself cannot backtrack.
	re.MatchTimeout = 5 * time.Second

	return &Locator{trigger: t, re: re}, nil
}

// Trigger returns the trigger this locator scans for.
func (l *Locator) Trigger() *types.Trigger {
	return l.trigger
}

// occurrences returns every trigger occurrence in content, in document
// order, with byte offsets.
func (l *Locator) occurrences(content []byte) ([]occurrence, error) {
	s := string(content)

	// regexp2 reports rune offsets; map them back to byte offsets when the
	// buffer contains multi-byte runes.
	var runeToByte []int
	if len(s) != utf8.RuneCountInString(s) {
		runeToByte = make([]int, 0, utf8.RuneCountInString(s)+1)
		for i := range s {
			runeToByte = append(runeToByte, i)
		}
		runeToByte = append(runeToByte, len(s))
	}
	toByte := func(runeIdx int) int {
		if runeToByte == nil {
			return runeIdx
		}
		return runeToByte[runeIdx]
	}

	var occs []occurrence
	m, err := l.re.FindStringMatch(s)
	if err != nil {
		return nil, fmt.Errorf("scanning for trigger %s: %w", l.trigger.ID, err)
	}
	for m != nil {
		start := toByte(m.Index)
		// The match ends one rune past the opening parenthesis.
		open := toByte(m.Index+m.Length) - 1
		occs = append(occs, occurrence{start: start, open: open})

		m, err = l.re.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("scanning for trigger %s: %w", l.trigger.ID, err)
		}
	}
	return occs, nil
}

// matchParen finds the parenthesis matching content[open] by depth
// counting: +1 per open, -1 per close, done when depth returns to zero.
// Returns false when the buffer ends first.
func matchParen(content []byte, open int) (int, bool) {
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// removalEnd extends a balanced span's end over trailing whitespace and
// one optional statement terminator.
func removalEnd(content []byte, end int) int {
	for end < len(content) {
		c := content[end]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
		end++
	}
	if end < len(content) && content[end] == ';' {
		end++
	}
	return end
}
