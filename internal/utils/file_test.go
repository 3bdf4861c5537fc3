package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestGetFileExtension(t *testing.T) {
	cases := map[string]string{
		"face.asf":     "asf",
		"face.PTS":     "pts",
		"dir/face.jpg": "jpg",
		"noext":        "",
	}
	for in, want := range cases {
		if got := GetFileExtension(in); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListBasePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.asf"))
	writeFile(t, filepath.Join(dir, "a.asf"))
	writeFile(t, filepath.Join(dir, "sub", "c.asf"))
	writeFile(t, filepath.Join(dir, "ignored.pts"))
	writeFile(t, filepath.Join(dir, "ignored.jpg"))

	bases, err := ListBasePaths(dir, "asf")
	if err != nil {
		t.Fatalf("ListBasePaths failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "b"),
		filepath.Join(dir, "sub", "c"),
	}
	if len(bases) != len(want) {
		t.Fatalf("Expected %d base paths, got %d: %v", len(want), len(bases), bases)
	}
	for i := range want {
		if bases[i] != want[i] {
			t.Errorf("Base path %d: got %q, want %q", i, bases[i], want[i])
		}
	}
}

func TestListBasePathsStableOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.pts"))
	writeFile(t, filepath.Join(dir, "a.pts"))

	first, err := ListBasePaths(dir, "pts")
	if err != nil {
		t.Fatalf("ListBasePaths failed: %v", err)
	}
	second, err := ListBasePaths(dir, "pts")
	if err != nil {
		t.Fatalf("ListBasePaths failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Enumeration order not stable at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestHasFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	if HasFilesWithExtension(dir, "asf") {
		t.Error("Expected no asf files in empty directory")
	}
	writeFile(t, filepath.Join(dir, "face.asf"))
	if !HasFilesWithExtension(dir, "asf") {
		t.Error("Expected asf files to be found")
	}
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	writeFile(t, file)

	if !FileExists(file) {
		t.Error("Expected FileExists to report true for existing file")
	}
	if FileExists(dir) {
		t.Error("Expected FileExists to report false for a directory")
	}
	if !DirExists(dir) {
		t.Error("Expected DirExists to report true for existing directory")
	}
	if DirExists(file) {
		t.Error("Expected DirExists to report false for a file")
	}
}
