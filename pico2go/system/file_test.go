package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveString(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "text.txt")

	SaveString(filename, "hello", 0)
	assert.Equal(t, "hello", LoadString(filename))

	SaveString(filename, " world", 1)
	assert.Equal(t, "hello world", LoadString(filename))

	SaveString(filename, "reset", 0)
	assert.Equal(t, "reset", LoadString(filename))

	assert.Equal(t, "", LoadString(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestFileTypeAndDelete(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(filename, []byte("a"), 0644))

	assert.Equal(t, FileRegular, FileType(filename))
	assert.Equal(t, FileDirectory, FileType(dir))
	assert.Equal(t, FileNone, FileType(filepath.Join(dir, "nope")))

	DeleteFile(filename)
	assert.Equal(t, FileNone, FileType(filename))

	DeleteFile(filename)
}

func TestDirContents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, DirContents(dir).Strings())
	assert.Equal(t, 0, DirContents(filepath.Join(dir, "missing")).Size())
}

func TestDirs(t *testing.T) {
	prev := CurrentDir()
	require.NotEmpty(t, prev)
	t.Cleanup(func() { ChangeDir(prev) })

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	ChangeDir(dir)
	cur, err := filepath.EvalSymlinks(CurrentDir())
	require.NoError(t, err)
	assert.Equal(t, dir, cur)

	full, err := filepath.EvalSymlinks(FullPath("."))
	require.NoError(t, err)
	assert.Equal(t, dir, full)

	ChangeDir(filepath.Join(dir, "missing"))
	assert.Equal(t, cur, CurrentDir())
}
