package system

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File types returned by FileType.
const (
	FileNone = iota
	FileRegular
	FileDirectory
)

// LoadString returns the contents of filename, or an empty string if it
// can't be read.
func LoadString(filename string) string {
	data, err := os.ReadFile(filename)
	if err != nil {
		logger.Warn("LoadString: reading file failed", "file", filename, "error", err)
		return ""
	}
	return string(data)
}

// SaveString writes str to filename. If appendTo is true (non-zero), str is
// appended to the existing contents.
func SaveString(filename, str string, appendTo int) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if IntBool(appendTo) {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	f, err := os.OpenFile(filename, flags, 0644)
	if err != nil {
		logger.Warn("SaveString: opening file failed", "file", filename, "error", err)
		return
	}

	if _, err := f.WriteString(str); err != nil {
		logger.Warn("SaveString: writing file failed", "file", filename, "error", err)
	}

	if err := f.Close(); err != nil {
		logger.Warn("SaveString: closing file failed", "file", filename, "error", err)
	}
}

// FileType returns FileNone if filename doesn't exist, FileDirectory if it
// is a directory and FileRegular otherwise.
func FileType(filename string) int {
	info, err := os.Stat(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("FileType: stat failed", "file", filename, "error", err)
		}
		return FileNone
	}
	if info.IsDir() {
		return FileDirectory
	}
	return FileRegular
}

// DeleteFile removes filename.
func DeleteFile(filename string) {
	if err := os.Remove(filename); err != nil {
		logger.Warn("DeleteFile: removing file failed", "file", filename, "error", err)
	}
}

// DirContents returns the names of the entries of the directory path,
// sorted by name. An unreadable directory yields an empty list.
func DirContents(path string) *List {
	entries, err := os.ReadDir(path)
	if err != nil {
		logger.Warn("DirContents: reading directory failed", "dir", path, "error", err)
		return NewList()
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return StringList(names)
}

// CurrentDir returns the working directory.
func CurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		logger.Warn("CurrentDir: getting working directory failed", "error", err)
		return ""
	}
	return dir
}

// ChangeDir changes the working directory to dir.
func ChangeDir(dir string) {
	if err := os.Chdir(dir); err != nil {
		logger.Warn("ChangeDir: changing directory failed", "dir", dir, "error", err)
	}
}

// FullPath returns the absolute path of filename.
func FullPath(filename string) string {
	path, err := filepath.Abs(filename)
	if err != nil {
		logger.Warn("FullPath: resolving path failed", "file", filename, "error", err)
		return ""
	}
	return path
}
