package worker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordIsNoopWhenDisabled(t *testing.T) {
	db = nil
	require.False(t, Enabled())
	require.NoError(t, Record(Upload{SourcePath: "/tmp/a.bin"}))

	uploads, err := Recent(10)
	require.NoError(t, err)
	require.Nil(t, uploads)
}

func TestHistoryRoundTrip(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "history.db")))
	t.Cleanup(func() { db = nil })
	require.True(t, Enabled())

	require.NoError(t, Record(Upload{
		SourcePath:  "/tmp/a.jpg",
		Hash:        "abc123",
		Destination: "http://localhost:8334",
		StatusCode:  200,
		ResultText:  "ok",
	}))
	require.NoError(t, Record(Upload{
		SourcePath:  "/tmp/b.jpg",
		Hash:        "def456",
		Destination: "http://localhost:8334",
		StatusCode:  503,
		ResultText:  "HTTP 503: unavailable after 3 attempts",
	}))

	uploads, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, uploads, 2)

	forA, err := BySource("/tmp/a.jpg")
	require.NoError(t, err)
	require.Len(t, forA, 1)
	require.Equal(t, 200, forA[0].StatusCode)
	require.Equal(t, "abc123", forA[0].Hash)
}
