package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.EnsureDir())
	return m
}

func TestNew_EmptyDir(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestLogRun(t *testing.T) {
	m := newManifest(t)

	entry, err := m.LogRun("/home/user/project", []Record{
		{Path: "/home/user/project/a.tmp", IsDir: false, Size: 10},
		{Path: "/home/user/project/build", IsDir: true, Size: 300},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "/home/user/project", entry.Root)
	assert.Equal(t, int64(1), entry.Summary.FilesDeleted)
	assert.Equal(t, int64(1), entry.Summary.DirsDeleted)
	assert.Equal(t, int64(310), entry.Summary.BytesReclaimed)
}

func TestListAndGet(t *testing.T) {
	m := newManifest(t)

	first, err := m.LogRun("/a", []Record{{Path: "/a/x.tmp", Size: 1}})
	require.NoError(t, err)
	second, err := m.LogRun("/b", nil)
	require.NoError(t, err)

	entries, err := m.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got, err := m.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "/a", got.Root)
	require.Len(t, got.Records, 1)

	_, err = m.Get(second.ID)
	require.NoError(t, err)

	_, err = m.Get("nope")
	assert.Error(t, err)
}

func TestList_Limit(t *testing.T) {
	m := newManifest(t)
	for i := 0; i < 5; i++ {
		_, err := m.LogRun("/p", nil)
		require.NoError(t, err)
	}

	entries, err := m.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	m, err := New(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, err)

	entries, err := m.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_SkipsUnparseableFiles(t *testing.T) {
	m := newManifest(t)
	_, err := m.LogRun("/p", nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "garbage.json"), []byte("{not json"), 0o644))

	entries, err := m.List(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCleanup(t *testing.T) {
	m := newManifest(t)
	entry, err := m.LogRun("/p", nil)
	require.NoError(t, err)

	path := filepath.Join(m.dir, entry.ID+".json")
	old := time.Now().AddDate(0, 0, -90)
	require.NoError(t, os.Chtimes(path, old, old))

	require.NoError(t, m.Cleanup(30))

	entries, err := m.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
