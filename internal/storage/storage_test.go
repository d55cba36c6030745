package storage

import (
	"path/filepath"
	"testing"

	"github.com/mmcdole/cineflix/internal/config"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// backends returns a fresh instance of every key-value implementation
func backends(t *testing.T) map[string]domain.KeyValueStore {
	t.Helper()
	dir := t.TempDir()

	bolt, err := OpenBolt(filepath.Join(dir, "bolt", "test.db"), log.NullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })

	sqlite, err := OpenSQLite(filepath.Join(dir, "sqlite", "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	file, err := NewFileStore(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	return map[string]domain.KeyValueStore{
		"memory": NewMemoryStore(),
		"bolt":   bolt,
		"sqlite": sqlite,
		"file":   file,
	}
}

func TestBackendsRoundTrip(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(domain.KeyListItems)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(domain.KeyListItems, []byte(`[1]`)))
			require.NoError(t, kv.Set(domain.KeyListItems, []byte(`[1,2]`)))

			got, ok, err := kv.Get(domain.KeyListItems)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[1,2]`, string(got))

			require.NoError(t, kv.Delete(domain.KeyListItems))
			require.NoError(t, kv.Delete(domain.KeyListItems), "deleting a missing key is not an error")

			_, ok, err = kv.Get(domain.KeyListItems)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBackendsFallBackOnMalformedData(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewJSON(kv, log.NullLogger())
			fallback := []record{}

			require.NoError(t, kv.Set(domain.KeyCollections, []byte(`{"name": `)))
			assert.Equal(t, fallback, Load(s, domain.KeyCollections, fallback))

			require.NoError(t, s.Save(domain.KeyCollections, []record{{Name: "a", Count: 2}}))
			assert.Equal(t, []record{{Name: "a", Count: 2}}, Load(s, domain.KeyCollections, fallback))
		})
	}
}

func TestParseOr(t *testing.T) {
	fallback := record{Name: "default"}

	tests := []struct {
		name string
		data string
		want record
	}{
		{"empty", "", fallback},
		{"whitespace", "  \n", fallback},
		{"malformed", "{", fallback},
		{"wrong shape", `[1, 2]`, fallback},
		{"valid", `{"name": "x", "count": 3}`, record{Name: "x", Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOr([]byte(tt.data), fallback))
		})
	}
}

func TestParseOrLeavesSliceFallbackIntact(t *testing.T) {
	fallback := []record{{Name: "a", Count: 1}}

	// The first element decodes before the type error on the second
	got := ParseOr([]byte(`[{"name": "b", "count": 7}, {"count": "x"}]`), fallback)
	assert.Equal(t, []record{{Name: "a", Count: 1}}, got)
	assert.Equal(t, []record{{Name: "a", Count: 1}}, fallback)

	got = ParseOr([]byte(`[{"name": "b"}]`), fallback)
	assert.Equal(t, []record{{Name: "b"}}, got)
	assert.Equal(t, "a", fallback[0].Name)
}

func TestLoadUsesParseOrFallback(t *testing.T) {
	kv := NewMemoryStore()
	s := NewJSON(kv, log.NullLogger())
	fallback := []record{{Name: "a", Count: 1}}

	require.NoError(t, kv.Set("k", []byte(`[{"name": "b", "count": 7}, {"count": "x"}]`)))
	assert.Equal(t, []record{{Name: "a", Count: 1}}, Load(s, "k", fallback))
	assert.Equal(t, 1, fallback[0].Count)

	// Missing struct fields keep their defaults
	require.NoError(t, kv.Set("r", []byte(`{"count": 4}`)))
	assert.Equal(t, record{Name: "default", Count: 4}, Load(s, "r", record{Name: "default"}))
}

func TestLoadMissingKey(t *testing.T) {
	s := NewJSON(NewMemoryStore(), log.NullLogger())
	assert.Equal(t, 7, Load(s, "absent", 7))
}

func TestMemoryQuota(t *testing.T) {
	kv := NewMemoryStore(WithQuota(10))
	s := NewJSON(kv, log.NullLogger())

	require.NoError(t, s.Save("k", "short"))

	err := s.Save("k", "this value is too long")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "write", serr.Op)
	assert.Equal(t, "k", serr.Key)

	// The previous value survives the refused write
	assert.Equal(t, "short", Load(s, "k", ""))

	// Deleting frees quota
	require.NoError(t, s.Remove("k"))
	require.NoError(t, s.Save("other", "123456"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	kv := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, kv.Set("k", value))
	value[0] = 'z'

	got, _, _ := kv.Get("k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'z'

	again, _, _ := kv.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cineflix.db")

	kv, err := OpenBolt(path, log.NullLogger())
	require.NoError(t, err)
	require.NoError(t, kv.Set(domain.KeyPreferences, []byte(`{"defaultView":"list"}`)))
	require.NoError(t, kv.Close())

	kv, err = OpenBolt(path, log.NullLogger())
	require.NoError(t, err)
	defer kv.Close()

	got, ok, err := kv.Get(domain.KeyPreferences)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"defaultView":"list"}`, string(got))
}

func TestFileStoreLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	kv, err := NewFileStore(fs, "/data")
	require.NoError(t, err)

	require.NoError(t, kv.Set(domain.KeyListItems, []byte(`[]`)))

	exists, err := afero.Exists(fs, "/data/"+domain.KeyListItems+".json")
	require.NoError(t, err)
	assert.True(t, exists)

	tmp, err := afero.Exists(fs, "/data/"+domain.KeyListItems+".json.tmp")
	require.NoError(t, err)
	assert.False(t, tmp)

	for _, key := range []string{"", "..", "../escape", "a/b", "sp ace"} {
		assert.Error(t, kv.Set(key, []byte(`1`)), "key %q", key)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{"memory", config.StorageConfig{Backend: config.BackendMemory}, "*storage.MemoryStore"},
		{"bolt without path", config.StorageConfig{Backend: config.BackendBolt}, "*storage.MemoryStore"},
		{"bolt", config.StorageConfig{Backend: config.BackendBolt, Path: filepath.Join(dir, "b")}, "*storage.BoltStore"},
		{"sqlite", config.StorageConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "s")}, "*storage.SQLiteStore"},
		{"file", config.StorageConfig{Backend: config.BackendFile, Path: filepath.Join(dir, "f")}, "*storage.FileStore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(tt.cfg, log.NullLogger())
			require.NoError(t, err)
			defer kv.Close()
			assert.Equal(t, tt.want, typeName(kv))
		})
	}

	_, err := Open(config.StorageConfig{Backend: "redis"}, log.NullLogger())
	assert.Error(t, err)
}

func typeName(v any) string {
	switch v.(type) {
	case *MemoryStore:
		return "*storage.MemoryStore"
	case *BoltStore:
		return "*storage.BoltStore"
	case *SQLiteStore:
		return "*storage.SQLiteStore"
	case *FileStore:
		return "*storage.FileStore"
	default:
		return "unknown"
	}
}
