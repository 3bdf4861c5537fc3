package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GetFileExtension returns the file extension without the dot
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// ListBasePaths recursively lists all files in a directory carrying the
// given extension (without dot) and returns their paths with the
// extension stripped, sorted lexicographically. The order is stable
// across calls, which positional rectangle association relies on.
func ListBasePaths(dir, ext string) ([]string, error) {
	var bases []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && GetFileExtension(path) == strings.ToLower(ext) {
			bases = append(bases, strings.TrimSuffix(path, filepath.Ext(path)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(bases)
	return bases, nil
}

// HasFilesWithExtension reports whether the directory contains at least
// one file with the given extension
func HasFilesWithExtension(dir, ext string) bool {
	bases, err := ListBasePaths(dir, ext)
	return err == nil && len(bases) > 0
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}
