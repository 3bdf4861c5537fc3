package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/menta2k/landmark-dataset/pkg/geometry"
)

// ParseASF parses an IMM database ASF annotation file into a shape.
// Coordinates stay in the file's native normalized range (roughly 0-1);
// the caller rescales them into pixel space using the dimensions of the
// sibling image.
func ParseASF(path string) (geometry.Shape, error) {
	file, err := os.Open(path)
	if err != nil {
		return geometry.Shape{}, fmt.Errorf("failed to open asf file: %w", err)
	}
	defer file.Close()

	var shape geometry.Shape
	landmark := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case len(line) == 0 || line[0] == '#':
			// comment or blank
		case strings.Contains(line, ".jpg"):
			// reference to the sibling image file
		case len(line) < 10:
			n, err := strconv.Atoi(line)
			if err != nil {
				return geometry.Shape{}, fmt.Errorf("invalid landmark count %q: %w", line, err)
			}
			shape = geometry.NewShape(n)
		default:
			// landmark record: <path> <type> <x> <y> ...
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return geometry.Shape{}, fmt.Errorf("malformed landmark record %q", line)
			}
			if landmark >= shape.Len() {
				return geometry.Shape{}, fmt.Errorf("landmark record %d exceeds declared count %d", landmark, shape.Len())
			}
			x, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return geometry.Shape{}, fmt.Errorf("invalid x coordinate %q: %w", fields[2], err)
			}
			y, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return geometry.Shape{}, fmt.Errorf("invalid y coordinate %q: %w", fields[3], err)
			}
			shape.X[landmark] = x
			shape.Y[landmark] = y
			landmark++
		}
	}
	if err := scanner.Err(); err != nil {
		return geometry.Shape{}, fmt.Errorf("failed to read asf file: %w", err)
	}

	if shape.Len() == 0 {
		return geometry.Shape{}, fmt.Errorf("asf file %s contains no landmarks", path)
	}
	return shape, nil
}
