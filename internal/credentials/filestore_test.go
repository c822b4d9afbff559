package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

func newTempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTempStore(t)

	assert.Empty(t, store.Token(), "fresh store has no token")
	assert.Nil(t, store.User())

	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.SetUser(&api.UserInfo{ID: 7, Phone: "13800000000"}))

	assert.Equal(t, "tok-123", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, int64(7), store.User().ID)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := newTempStore(t)

	// Clearing an empty store is fine.
	require.NoError(t, store.Clear())

	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.SetUser(&api.UserInfo{ID: 7}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestFileStore_CampusSurvivesClear(t *testing.T) {
	store := newTempStore(t)

	require.NoError(t, store.SetCampusID(3))
	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.Clear())

	assert.Equal(t, int64(3), store.CampusID(), "campus selector is preference, not session state")
}

func TestFileStore_CorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	assert.Empty(t, store.Token(), "unreadable storage must degrade to empty, not fail")

	// Writing through the corrupt file recovers it.
	require.NoError(t, store.SetToken("tok-new"))
	assert.Equal(t, "tok-new", store.Token())
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")

	first := NewFileStore(path)
	require.NoError(t, first.SetToken("tok-123"))

	second := NewFileStore(path)
	assert.Equal(t, "tok-123", second.Token())
	assert.True(t, second.Exists())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".lessonctl"), ExpandPath("~/.lessonctl"))
	assert.Equal(t, "/etc/lessonctl", ExpandPath("/etc/lessonctl"))
	assert.Equal(t, home, ExpandPath("~"))
}
