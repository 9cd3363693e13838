package types

// OffsetSpan is byte range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int
	End   int
}

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int
	Column int
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint
	End   SourcePoint
}

// Location combines byte offsets and source positions.
type Location struct {
	Offset OffsetSpan
	Source SourceSpan
}

// LocationFor builds a Location for the byte range [start, end) of content.
func LocationFor(content []byte, start, end int) Location {
	startLine, startCol := ComputeLineColumn(content, start)
	endLine, endCol := ComputeLineColumn(content, end)
	return Location{
		Offset: OffsetSpan{Start: start, End: end},
		Source: SourceSpan{
			Start: SourcePoint{Line: startLine, Column: startCol},
			End:   SourcePoint{Line: endLine, Column: endCol},
		},
	}
}
