package strip

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/delog-tool/delog/pkg/types"
)

// Prefilter uses Aho-Corasick keyword matching to decide whether a buffer
// can contain any trigger at all, so trigger-free files skip the scan and
// are returned untouched without a single regex pass.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewPrefilter builds a prefilter from the triggers' keywords.
func NewPrefilter(triggers []*types.Trigger) *Prefilter {
	pf := &Prefilter{}

	seen := make(map[string]bool)
	for _, t := range triggers {
		for _, keyword := range t.EffectiveKeywords() {
			if !seen[keyword] {
				seen[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// MightMatch reports whether content contains at least one trigger
// keyword. A false result guarantees no trigger occurrence exists.
func (pf *Prefilter) MightMatch(content []byte) bool {
	if pf.matcher == nil {
		// No keywords means nothing can ever match.
		return false
	}
	return len(pf.matcher.Match(content)) > 0
}
