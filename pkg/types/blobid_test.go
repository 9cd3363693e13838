package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBlobID(t *testing.T) {
	// Git-style blob hash of "hello\n" (git hash-object output).
	id := ComputeBlobID([]byte("hello\n"))
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", id.Hex())

	// Different content, different ID.
	other := ComputeBlobID([]byte("hello"))
	assert.NotEqual(t, id, other)

	// Deterministic.
	assert.Equal(t, id, ComputeBlobID([]byte("hello\n")))
}

func TestParseBlobID(t *testing.T) {
	id := ComputeBlobID([]byte("round trip"))

	parsed, err := ParseBlobID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseBlobID("short")
	assert.Error(t, err)

	_, err = ParseBlobID("zz013625030ba8dba906f756967f9e9ca394464a")
	assert.Error(t, err)
}

func TestBlobID_SQLRoundTrip(t *testing.T) {
	id := ComputeBlobID([]byte("sql"))

	value, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), value)

	var scanned BlobID
	require.NoError(t, scanned.Scan(id.Hex()))
	assert.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan([]byte(id.Hex())))
	assert.Equal(t, id, scanned)

	assert.Error(t, scanned.Scan(nil))
	assert.Error(t, scanned.Scan(42))
}
