package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCmd_FlagBuiltConfig(t *testing.T) {
	// Given: a directory with one matching and one non-matching file
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("hello\nworld"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("nope"), 0644))
	t.Chdir(dir)

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "./idx", "--include", "*.md"})

	// When: indexing via include flags
	err := rootCmd.Execute()

	// Then: the result JSON lands on stdout
	require.NoError(t, err)

	var res struct {
		IndexedFiles uint64 `json:"indexed_files"`
		TotalChunks  uint64 `json:"total_chunks"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, uint64(1), res.IndexedFiles)
	assert.Equal(t, uint64(1), res.TotalChunks)
}

func TestIndexCmd_InlineConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("hello"), 0644))
	t.Chdir(dir)

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "./idx",
		"--config", `{"include":["*.md"],"exclude":[],"storage_path":"./idx"}`})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"indexed_files":1`)
}

func TestIndexCmd_NoPatternsFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"index", "./idx"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no include patterns")
}

func TestResolveConfigJSON(t *testing.T) {
	t.Run("inline JSON passes through untouched", func(t *testing.T) {
		inline := `{"include":["*.go"],"exclude":[],"storage_path":"./x"}`
		got, err := resolveConfigJSON("./x", inline, "", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, inline, got)
	})

	t.Run("config file contents pass through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		content := `{"include":["*.md"],"exclude":[],"storage_path":"./x"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		got, err := resolveConfigJSON("./x", "", path, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("flags build a config carrying the storage path argument", func(t *testing.T) {
		got, err := resolveConfigJSON("./idx", "", "", []string{"*.md"}, []string{"vendor"})
		require.NoError(t, err)

		var cfg map[string]any
		require.NoError(t, json.Unmarshal([]byte(got), &cfg))
		assert.Equal(t, "./idx", cfg["storage_path"])
		assert.Equal(t, []any{"*.md"}, cfg["include"])
		assert.Equal(t, []any{"vendor"}, cfg["exclude"])
	})

	t.Run("nothing given is an error", func(t *testing.T) {
		_, err := resolveConfigJSON("./idx", "", "", nil, nil)
		assert.Error(t, err)
	})
}
