package trigger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/delog-tool/delog/pkg/types"
)

// FilterConfig specifies include and exclude patterns for trigger filtering.
type FilterConfig struct {
	Include []string // Regex patterns - only matching triggers included
	Exclude []string // Regex patterns - matching triggers excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to triggers, matching
// against trigger IDs. Include is applied first, then exclude. Empty
// include means "include all".
func Filter(triggers []*types.Trigger, config FilterConfig) ([]*types.Trigger, error) {
	if len(triggers) == 0 {
		return triggers, nil
	}

	includeRegexes, err := compilePatterns(config.Include)
	if err != nil {
		return nil, err
	}
	excludeRegexes, err := compilePatterns(config.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := triggers
	if len(includeRegexes) > 0 {
		kept := make([]*types.Trigger, 0)
		for _, t := range filtered {
			if matchesAny(t.ID, includeRegexes) {
				kept = append(kept, t)
			}
		}
		filtered = kept
	}

	if len(excludeRegexes) > 0 {
		kept := make([]*types.Trigger, 0)
		for _, t := range filtered {
			if !matchesAny(t.ID, excludeRegexes) {
				kept = append(kept, t)
			}
		}
		filtered = kept
	}

	return filtered, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var regexes []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		regexes = append(regexes, re)
	}
	return regexes, nil
}

func matchesAny(id string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}
