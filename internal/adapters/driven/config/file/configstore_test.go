package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateDirUntilSaved(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "savekit")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Set("editor.command", "nano"))
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("editor.command", "code --wait"))

	val, ok := store.Get("editor.command")
	assert.True(t, ok)
	assert.Equal(t, "code --wait", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("resave.dump_dir", "/tmp/dumps"))
	require.NoError(t, store.Set("text.indent", 4))

	assert.Equal(t, "/tmp/dumps", store.GetString("resave.dump_dir"))
	assert.Equal(t, "", store.GetString("text.indent"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("editor.command", "nano -w"))
	require.NoError(t, store1.Set("text.indent", 4))
	require.NoError(t, store1.Set("resave.dump_dir", "dumps"))

	// Create new store instance - should load from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "nano -w", store2.GetString("editor.command"))
	assert.Equal(t, 4, store2.GetInt("text.indent"))
	assert.Equal(t, "dumps", store2.GetString("resave.dump_dir"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("editor.command", "vim"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(data), "[editor]")
	assert.NotContains(t, string(data), "editor.command")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[editor]\ncommand = \"hx\"\n\n[text]\nindent = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "hx", store.GetString("editor.command"))
	assert.Equal(t, 3, store.GetInt("text.indent"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
		}(i)
	}
	wg.Wait()
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	corrupted := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), corrupted, 0o600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

// TestConfigStore_SetWriteFailureKeepsOldValue replaces the file with a
// directory so the write fails.
func TestConfigStore_SetWriteFailureKeepsOldValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("editor.command", "vim"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0o700))

	err = store.Set("editor.command", "nano")
	assert.Error(t, err)
	assert.Equal(t, "vim", store.GetString("editor.command"))

	err = store.Set("text.indent", 4)
	assert.Error(t, err)
	_, ok := store.Get("text.indent")
	assert.False(t, ok)
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"editor.command":  "vim",
		"text.indent":     2,
		"top":             true,
		"resave.dump_dir": ".",
	})

	assert.Equal(t, map[string]any{
		"editor": map[string]any{"command": "vim"},
		"text":   map[string]any{"indent": 2},
		"resave": map[string]any{"dump_dir": "."},
		"top":    true,
	}, nested)
	assert.Equal(t, map[string]any{
		"editor.command":  "vim",
		"text.indent":     2,
		"top":             true,
		"resave.dump_dir": ".",
	}, flattenMap(nested, ""))
}
