// Package enum enumerates the files a cleanup run will process.
//
// Two enumerators exist: ListEnumerator yields an explicit path list (the
// original tool's fixed-list mode, now supplied by the caller), and
// FilesystemEnumerator walks a directory tree. Both yield paths one at a
// time, in order; files are processed strictly sequentially.
package enum

import (
	"bytes"
	"context"
	"strings"
)

// Config controls filesystem enumeration.
type Config struct {
	// Root is the directory to walk.
	Root string

	// IncludeHidden includes dot-files and dot-directories.
	IncludeHidden bool

	// MaxFileSize skips files larger than this many bytes (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks yields file symlinks to the callback; the processor
	// reads and writes through them. Directory symlinks are never
	// descended, a limitation of the lstat-based walk.
	FollowSymlinks bool
}

// Enumerator yields file paths to a callback, stopping on the first
// callback error or context cancellation.
type Enumerator interface {
	Enumerate(ctx context.Context, callback func(path string) error) error
}

// isHidden checks if a filename is hidden (starts with .).
// The special entries "." and ".." are NOT considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// IsBinary detects if content is binary by checking the first 8KB for
// null bytes. Binary files are never rewritten.
func IsBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
