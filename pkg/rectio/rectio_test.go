package rectio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/menta2k/landmark-dataset/pkg/geometry"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestImportRectanglesEmptyPath(t *testing.T) {
	rects, err := ImportRectangles("")
	if err != nil {
		t.Fatalf("Empty path must not be an error, got %v", err)
	}
	if len(rects) != 0 {
		t.Errorf("Expected no rectangles, got %d", len(rects))
	}
}

func TestImportRectanglesMissingFile(t *testing.T) {
	if _, err := ImportRectangles(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for named but missing rectangle file")
	}
}

func TestImportRectangles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.txt")
	content := "# face boxes\n10 10 90 40\n\n0 0 50 25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rects, err := ImportRectangles(path)
	if err != nil {
		t.Fatalf("ImportRectangles failed: %v", err)
	}
	if len(rects) != 2 {
		t.Fatalf("Expected 2 rectangles, got %d", len(rects))
	}

	r := rects[0]
	if r.Len() != 4 {
		t.Fatalf("Expected 4 corners, got %d", r.Len())
	}
	if !almostEqual(r.X[0], 10) || !almostEqual(r.Y[0], 10) ||
		!almostEqual(r.X[3], 90) || !almostEqual(r.Y[3], 40) {
		t.Errorf("Unexpected first rectangle: X=%v Y=%v", r.X, r.Y)
	}
}

func TestImportRectanglesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.txt")
	if err := os.WriteFile(path, []byte("10 10 90\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ImportRectangles(path); err == nil {
		t.Error("Expected error for rectangle line with fewer than 4 coordinates")
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.txt")
	in := []geometry.Rect{
		geometry.NewRect(10, 10, 90, 40),
		geometry.NewRect(5, 5, 25, 12.5),
	}

	if err := ExportRectangles(path, in); err != nil {
		t.Fatalf("ExportRectangles failed: %v", err)
	}
	out, err := ImportRectangles(path)
	if err != nil {
		t.Fatalf("ImportRectangles failed: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("Expected %d rectangles, got %d", len(in), len(out))
	}
	for i := range in {
		for j := 0; j < 4; j++ {
			if !almostEqual(in[i].X[j], out[i].X[j]) || !almostEqual(in[i].Y[j], out[i].Y[j]) {
				t.Errorf("Rectangle %d corner %d differs: got (%f, %f), want (%f, %f)",
					i, j, out[i].X[j], out[i].Y[j], in[i].X[j], in[i].Y[j])
			}
		}
	}
}
