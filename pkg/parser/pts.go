package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/menta2k/landmark-dataset/pkg/geometry"
)

// ParsePTS parses an iBug PTS annotation file into a shape in pixel
// coordinates. The file stores 1-based pixel positions; each point is
// shifted by -1 on both axes to a 0-based origin.
func ParsePTS(path string) (geometry.Shape, error) {
	file, err := os.Open(path)
	if err != nil {
		return geometry.Shape{}, fmt.Errorf("failed to open pts file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// version line
	if !scanner.Scan() {
		return geometry.Shape{}, fmt.Errorf("pts file %s is empty", path)
	}

	// "n_points: <N>"
	if !scanner.Scan() {
		return geometry.Shape{}, fmt.Errorf("pts file %s is missing the point count", path)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return geometry.Shape{}, fmt.Errorf("malformed point count line %q", scanner.Text())
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return geometry.Shape{}, fmt.Errorf("invalid point count %q: %w", fields[len(fields)-1], err)
	}

	// opening delimiter
	if !scanner.Scan() {
		return geometry.Shape{}, fmt.Errorf("pts file %s is missing the opening delimiter", path)
	}

	shape := geometry.NewShape(n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return geometry.Shape{}, fmt.Errorf("pts file %s: expected %d points, got %d", path, n, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return geometry.Shape{}, fmt.Errorf("malformed point line %q", scanner.Text())
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("invalid x coordinate %q: %w", fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return geometry.Shape{}, fmt.Errorf("invalid y coordinate %q: %w", fields[1], err)
		}
		// Matlab 1-based origin to 0-based pixels
		shape.X[i] = x - 1
		shape.Y[i] = y - 1
	}
	if err := scanner.Err(); err != nil {
		return geometry.Shape{}, fmt.Errorf("failed to read pts file: %w", err)
	}

	return shape, nil
}
