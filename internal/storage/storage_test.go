package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagnote/internal/config"
	"tagnote/internal/notes"
)

var sample = []notes.Note{
	{Tag: "work", Body: "buy milk"},
	{Tag: "", Body: "x"},
	{Tag: "urgent", Body: "call bob: today"},
	{Tag: "ünï", Body: "çödé 🙂"},
}

func TestJSONRoundTrip(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "notes.json"))
	require.NoError(t, f.Save(sample))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestJSONIsPrettyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, NewJSONFile(path).Save(sample[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"tag":"work","body":"buy milk"}]`, string(data))
	assert.Contains(t, string(data), "\n  ")
}

func TestJSONMissingFile(t *testing.T) {
	_, err := NewJSONFile(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"tag": `), 0o644))

	_, err := NewJSONFile(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestJSONLegacyCommandField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	legacy := `[{"tag": "git", "command": ["git log --oneline"]}, {"tag": "", "command": []}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewJSONFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []notes.Note{{Tag: "git", Body: "git log --oneline"}, {}}, got)
}

func TestJSONSeedOnlyWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "notes.json")
	f := NewJSONFile(path)
	require.NoError(t, f.Seed())

	got, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, f.Save(sample))
	require.NoError(t, f.Seed())
	got, err = f.Load()
	require.NoError(t, err)
	assert.Len(t, got, len(sample))
}

func TestOpenJSONWithoutSeedFailsOnLoad(t *testing.T) {
	repo, err := Open(config.BackendJSON, filepath.Join(t.TempDir(), "notes.json"), false)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("postgres", "x", true)
	require.Error(t, err)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	repo, err := Open(config.BackendSQLite, path, true)
	require.NoError(t, err)

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Save(sample))
	require.NoError(t, repo.Save(sample[1:]))
	require.NoError(t, repo.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, sample[1:], got)
}
