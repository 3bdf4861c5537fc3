// Package rectio reads and writes external rectangle list files. A
// rectangle list pairs one bounding rectangle with each annotation file
// of a dataset, in the dataset's enumeration order.
//
// The format is plain text: one rectangle per line as four
// whitespace-separated floats "minX minY maxX maxY"; blank lines and
// lines starting with '#' are skipped.
package rectio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/menta2k/landmark-dataset/pkg/geometry"
)

// ImportRectangles loads a rectangle list. An empty path is the
// "no rectangles provided" signal and yields an empty slice without
// error; a named but unreadable file is an error.
func ImportRectangles(path string) ([]geometry.Rect, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rectangle file: %w", err)
	}
	defer file.Close()

	var rects []geometry.Rect

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("malformed rectangle line %q", line)
		}
		var coords [4]float64
		for i := 0; i < 4; i++ {
			coords[i], err = strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid rectangle coordinate %q: %w", fields[i], err)
			}
		}
		rects = append(rects, geometry.NewRect(coords[0], coords[1], coords[2], coords[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rectangle file: %w", err)
	}

	return rects, nil
}

// ExportRectangles writes a rectangle list in the format read by
// ImportRectangles, taking each rectangle's extreme coordinates.
func ExportRectangles(path string, rects []geometry.Rect) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rectangle file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, r := range rects {
		if r.Len() == 0 {
			return fmt.Errorf("cannot export empty rectangle")
		}
		minX, maxX := r.X[0], r.X[0]
		minY, maxY := r.Y[0], r.Y[0]
		for i := 1; i < r.Len(); i++ {
			if r.X[i] < minX {
				minX = r.X[i]
			}
			if r.X[i] > maxX {
				maxX = r.X[i]
			}
			if r.Y[i] < minY {
				minY = r.Y[i]
			}
			if r.Y[i] > maxY {
				maxY = r.Y[i]
			}
		}
		if _, err := fmt.Fprintf(w, "%g %g %g %g\n", minX, minY, maxX, maxY); err != nil {
			return fmt.Errorf("failed to write rectangle: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush rectangle file: %w", err)
	}
	return nil
}
