package enum

import (
	"context"
)

// ListEnumerator yields an explicit, ordered list of file paths. Paths
// are passed through as given; existence is the processor's concern, so a
// missing entry is reported there and never aborts the list.
type ListEnumerator struct {
	paths []string
}

// NewListEnumerator creates an enumerator over an explicit path list.
func NewListEnumerator(paths []string) *ListEnumerator {
	return &ListEnumerator{paths: paths}
}

// Enumerate yields each configured path in order.
func (e *ListEnumerator) Enumerate(ctx context.Context, callback func(path string) error) error {
	for _, path := range e.paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := callback(path); err != nil {
			return err
		}
	}
	return nil
}
