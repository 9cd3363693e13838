package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOrphanLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"object fragment", "  { a: 1, b: 2 },", true},
		{"array fragment", "  [1, 2, 3],", true},
		{"function definition line kept", "{ function render() {} },", false},
		{"const declaration kept", "const xs = [1, 2],", false},
		{"substring let keeps the line", `  ["leftover"],`, false},
		{"substring var keeps the line", "  [varNames],", false},
		{"plain code", "return compute(a);", false},
		{"object without trailing comma", "{ a: 1 }", false},
		{"array without trailing comma", "[1, 2]", false},
		{"empty line", "", false},
		{"brace only", "{", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOrphanLine(tt.line))
		})
	}
}

func TestFilterOrphans(t *testing.T) {
	input := []byte("keep();\n  { a: 1 },\nalso();\n  [1, 2],\n")

	out, dropped := FilterOrphans(input)
	assert.Equal(t, "keep();\nalso();\n", string(out))
	assert.Equal(t, 2, dropped)
}

func TestFilterOrphans_NoChangeAliasesInput(t *testing.T) {
	input := []byte("a();\nb();\n")

	out, dropped := FilterOrphans(input)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, string(input), string(out))
}
