package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delog-tool/delog/pkg/types"
)

func TestNewLocator_EscapesCallName(t *testing.T) {
	// The dot in a qualified call name is a literal, not a regex wildcard.
	loc, err := NewLocator(types.NewTrigger("console.log"))
	require.NoError(t, err)

	occs, err := loc.occurrences([]byte("consoleXlog(1);"))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestLocator_Occurrences(t *testing.T) {
	loc, err := NewLocator(types.NewTrigger("console.log"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
		want    []occurrence
	}{
		{
			name:    "single",
			content: `console.log("a");`,
			want:    []occurrence{{start: 0, open: 11}},
		},
		{
			name:    "whitespace before paren",
			content: "x; console.log \t(1);",
			want:    []occurrence{{start: 3, open: 16}},
		},
		{
			name:    "multiple in document order",
			content: "console.log(1); console.log(2);",
			want:    []occurrence{{start: 0, open: 11}, {start: 16, open: 27}},
		},
		{
			name:    "no opening paren is not an occurrence",
			content: "console.log;",
			want:    nil,
		},
		{
			name:    "none",
			content: "nothing here",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs, err := loc.occurrences([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, occs)
		})
	}
}

func TestLocator_OccurrencesByteOffsetsWithMultiByteRunes(t *testing.T) {
	loc, err := NewLocator(types.NewTrigger("console.log"))
	require.NoError(t, err)

	content := []byte("// héllo\nconsole.log(1);")
	occs, err := loc.occurrences(content)
	require.NoError(t, err)

	require.Len(t, occs, 1)
	// "é" is two bytes; offsets must be byte-accurate.
	assert.Equal(t, "console.log", string(content[occs[0].start:occs[0].start+11]))
	assert.Equal(t, byte('('), content[occs[0].open])
}

func TestMatchParen(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		open     int
		wantIdx  int
		wantOK   bool
	}{
		{"flat", "(abc)", 0, 4, true},
		{"nested", "(a(b)c(d))", 0, 9, true},
		{"unbalanced", "(a(b)", 0, 0, false},
		{"immediately closed", "()", 0, 1, true},
		{"offset start", "xx(y)", 2, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := matchParen([]byte(tt.content), tt.open)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestRemovalEnd(t *testing.T) {
	tests := []struct {
		name    string
		content string
		end     int
		want    int
	}{
		{"terminator directly", ");x", 1, 2},
		{"whitespace then terminator", ") \t\n;x", 1, 5},
		{"whitespace no terminator", ") \nx", 1, 3},
		{"nothing trailing", ")", 1, 1},
		{"only one terminator", ");;", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, removalEnd([]byte(tt.content), tt.end))
		})
	}
}

func TestUnbalanced_Error(t *testing.T) {
	u := Unbalanced{
		Trigger: "console.log",
		Location: types.Location{
			Source: types.SourceSpan{Start: types.SourcePoint{Line: 3, Column: 5}},
		},
	}
	assert.Contains(t, u.Error(), "console.log")
	assert.Contains(t, u.Error(), "line 3")
	assert.ErrorContains(t, ErrUnbalanced, "no matching closing parenthesis")
}
