package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops a small script named name into dir with the given mode and
// returns its full path.
func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
	return path
}

func TestSearchPathFrom(t *testing.T) {
	t.Run("splits on the platform list separator", func(t *testing.T) {
		value := "/usr/bin" + string(os.PathListSeparator) + "/bin"

		got := SearchPathFrom(value)

		assert.Equal(t, SearchPath{"/usr/bin", "/bin"}, got)
	})

	t.Run("empty value yields empty path", func(t *testing.T) {
		assert.Empty(t, SearchPathFrom(""))
	})
}

func TestResolver_ResolveExternal(t *testing.T) {
	t.Run("finds an executable file", func(t *testing.T) {
		dir := t.TempDir()
		want := writeFile(t, dir, "tool", 0o755)
		r := NewResolver(SearchPath{dir})

		got, ok := r.ResolveExternal("tool")

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("earlier directory wins", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		want := writeFile(t, first, "tool", 0o755)
		writeFile(t, second, "tool", 0o755)
		r := NewResolver(SearchPath{first, second})

		got, ok := r.ResolveExternal("tool")

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("skips files without execute bits", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		writeFile(t, first, "tool", 0o644)
		want := writeFile(t, second, "tool", 0o755)
		r := NewResolver(SearchPath{first, second})

		got, ok := r.ResolveExternal("tool")

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("owner-only execute bit is enough", func(t *testing.T) {
		dir := t.TempDir()
		want := writeFile(t, dir, "tool", 0o700)
		r := NewResolver(SearchPath{dir})

		got, ok := r.ResolveExternal("tool")

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("skips directories with a matching name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "tool"), 0o755))
		r := NewResolver(SearchPath{dir})

		_, ok := r.ResolveExternal("tool")

		assert.False(t, ok)
	})

	t.Run("ignores missing search directories", func(t *testing.T) {
		dir := t.TempDir()
		want := writeFile(t, dir, "tool", 0o755)
		r := NewResolver(SearchPath{filepath.Join(dir, "nonexistent"), dir})

		got, ok := r.ResolveExternal("tool")

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		r := NewResolver(SearchPath{t.TempDir()})

		got, ok := r.ResolveExternal("tool")

		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("empty search path", func(t *testing.T) {
		r := NewResolver(nil)

		_, ok := r.ResolveExternal("tool")

		assert.False(t, ok)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("builtin wins over an executable of the same name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "echo", 0o755)
		r := NewResolver(SearchPath{dir})

		res := r.Resolve("echo")

		assert.Equal(t, ResolvedBuiltin, res.Kind)
		assert.Equal(t, BuiltinEcho, res.Builtin)
	})

	t.Run("external", func(t *testing.T) {
		dir := t.TempDir()
		want := writeFile(t, dir, "tool", 0o755)
		r := NewResolver(SearchPath{dir})

		res := r.Resolve("tool")

		assert.Equal(t, ResolvedExternal, res.Kind)
		assert.Equal(t, want, res.Path)
	})

	t.Run("not found", func(t *testing.T) {
		r := NewResolver(SearchPath{t.TempDir()})

		res := r.Resolve("tool")

		assert.Equal(t, ResolvedNotFound, res.Kind)
	})
}
