package types

// ComputeLineColumn resolves a byte offset in content to a 1-based line
// and column pair. Offsets past the end of the buffer resolve to the
// position just after the last byte.
func ComputeLineColumn(content []byte, byteOffset int) (line, column int) {
	if byteOffset > len(content) {
		byteOffset = len(content)
	}

	line, column = 1, 1
	for _, b := range content[:byteOffset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
