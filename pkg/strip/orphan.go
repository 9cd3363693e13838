package strip

import (
	"strings"
)

// FilterOrphans drops lines that look like leftover fragments of a
// multi-line literal argument after call removal: a line that is just an
// object-literal fragment ("{ ... },") outside a function definition, or
// an array-literal fragment ("[ ... ],") with no declaration keyword.
//
// This pass is heuristic. It can drop legitimate code that happens to
// have the same shape, which is why callers can disable it; it is a
// best-effort cleanup, not an authoritative one. Remaining lines keep
// their original order.
func FilterOrphans(content []byte) ([]byte, int) {
	lines := strings.Split(string(content), "\n")
	kept := make([]string, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		if isOrphanLine(line) {
			dropped++
			continue
		}
		kept = append(kept, line)
	}

	if dropped == 0 {
		return content, 0
	}
	return []byte(strings.Join(kept, "\n")), dropped
}

// isOrphanLine applies the fragment heuristic to a single line.
func isOrphanLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "},") &&
		!strings.Contains(trimmed, "function") {
		return true
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "],") &&
		!strings.Contains(trimmed, "const") &&
		!strings.Contains(trimmed, "let") &&
		!strings.Contains(trimmed, "var") {
		return true
	}

	return false
}
