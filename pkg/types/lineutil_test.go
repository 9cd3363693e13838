package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLineColumn(t *testing.T) {
	content := []byte("first\nsecond\nthird")

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start", 0, 1, 1},
		{"mid first line", 3, 1, 4},
		{"newline itself", 5, 1, 6},
		{"start of second line", 6, 2, 1},
		{"third line", 14, 3, 2},
		{"past end clamps", 100, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := ComputeLineColumn(content, tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestLocationFor(t *testing.T) {
	content := []byte("ab\ncde\n")
	loc := LocationFor(content, 3, 6)

	assert.Equal(t, OffsetSpan{Start: 3, End: 6}, loc.Offset)
	assert.Equal(t, SourcePoint{Line: 2, Column: 1}, loc.Source.Start)
	assert.Equal(t, SourcePoint{Line: 2, Column: 4}, loc.Source.End)
}
