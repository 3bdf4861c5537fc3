// Package importer turns on-disk facial landmark datasets into an
// in-memory training corpus. It detects the dataset dialect, parses one
// annotation file per example, pairs it with the grayscale decode of
// its sibling image, associates a bounding rectangle, optionally shrinks
// oversized examples and optionally doubles the corpus with mirrored
// variants.
package importer

import (
	"errors"
	"fmt"
	"image"

	"github.com/menta2k/landmark-dataset/internal/utils"
	"github.com/menta2k/landmark-dataset/pkg/codec"
	"github.com/menta2k/landmark-dataset/pkg/geometry"
	"github.com/menta2k/landmark-dataset/pkg/parser"
	"github.com/menta2k/landmark-dataset/pkg/rectio"
)

// Fatal import failures. Per-candidate parse or decode failures are not
// fatal; they are recorded in the Report and the candidate is skipped.
var (
	ErrUnknownFormat     = errors.New("unknown database format")
	ErrRectCountMismatch = errors.New("rectangle count does not match candidate count")
	ErrNoEntries         = errors.New("no entries imported")
)

// Options controls an import run.
type Options struct {
	// MaxImageSideLength caps the longer image side; larger examples are
	// shrunk uniformly (image, shape and rectangle together). Zero or
	// negative disables downscaling.
	MaxImageSideLength int

	// GenerateMirrored appends a horizontally flipped copy of every
	// imported example as an additional corpus entry.
	GenerateMirrored bool
}

// Corpus is the accumulated training set: three parallel sequences
// where index i in each refers to the same example. Entries are
// append-only; they are never mutated or removed once added.
type Corpus struct {
	Images []*image.NRGBA
	Shapes []geometry.Shape
	Rects  []geometry.Rect
}

// Len returns the number of examples in the corpus.
func (c *Corpus) Len() int {
	return len(c.Images)
}

func (c *Corpus) append(img *image.NRGBA, s geometry.Shape, r geometry.Rect) {
	c.Images = append(c.Images, img)
	c.Shapes = append(c.Shapes, s)
	c.Rects = append(c.Rects, r)
}

// Skip records one candidate that was left out of the corpus.
type Skip struct {
	Base   string
	Reason string
}

// Report carries the diagnostics of an import run back to the caller.
type Report struct {
	Format     parser.Format
	Candidates int
	Appended   int
	Skipped    []Skip
}

func (r Report) String() string {
	return fmt.Sprintf("%s database: %d candidates, %d entries appended, %d skipped",
		r.Format, r.Candidates, r.Appended, len(r.Skipped))
}

// strategy captures what differs between the two dataset dialects: the
// annotation extension, the parser, and whether parsed coordinates are
// image-normalized and need lifting into pixel space.
type strategy struct {
	ext        string
	parse      func(string) (geometry.Shape, error)
	normalized bool
}

var strategies = map[parser.Format]strategy{
	parser.FormatIMM:  {ext: "asf", parse: parser.ParseASF, normalized: true},
	parser.FormatIBUG: {ext: "pts", parse: parser.ParsePTS, normalized: false},
}

// Import loads a dataset directory into a fresh corpus. rectFile may be
// empty; every example then gets the tight bounds of its own shape.
func Import(dir, rectFile string, opts Options) (*Corpus, Report, error) {
	corpus := &Corpus{}
	report, err := ImportInto(corpus, dir, rectFile, opts)
	return corpus, report, err
}

// ImportInto appends a dataset directory to an existing corpus. Prior
// entries are preserved. On a fatal error the corpus may hold some or
// none of the new entries; Report.Appended says how many were added.
// Success requires at least one appended entry.
func ImportInto(corpus *Corpus, dir, rectFile string, opts Options) (Report, error) {
	format := parser.DetectFormat(dir)
	report := Report{Format: format}

	st, ok := strategies[format]
	if !ok {
		return report, fmt.Errorf("%w in %s", ErrUnknownFormat, dir)
	}

	bases, err := utils.ListBasePaths(dir, st.ext)
	if err != nil {
		return report, fmt.Errorf("failed to list candidates: %w", err)
	}
	report.Candidates = len(bases)

	loadedRects, err := rectio.ImportRectangles(rectFile)
	if err != nil {
		return report, err
	}
	if len(loadedRects) > 0 && len(loadedRects) != len(bases) {
		return report, fmt.Errorf("%w: %d rectangles for %d candidates",
			ErrRectCountMismatch, len(loadedRects), len(bases))
	}

	for i, base := range bases {
		shape, err := st.parse(base + "." + st.ext)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{Base: base, Reason: err.Error()})
			continue
		}

		img, err := decodeCandidate(base)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{Base: base, Reason: err.Error()})
			continue
		}

		bounds := img.Bounds()
		if st.normalized {
			// lift normalized coordinates into pixel space
			shape.ScaleAxes(float64(bounds.Dx()), float64(bounds.Dy()))
		}

		var rect geometry.Rect
		if len(loadedRects) > 0 {
			rect = loadedRects[i].Clone()
		} else {
			rect = shape.Bounds()
		}

		if factor, ok := needsScaling(bounds.Dx(), bounds.Dy(), opts.MaxImageSideLength); ok {
			img = codec.Resize(img, factor)
			shape.Scale(factor)
			rect.Scale(factor)
		}

		corpus.append(img, shape, rect)
		report.Appended++

		if opts.GenerateMirrored {
			mImg, mShape, mRect := mirror(img, shape, rect)
			corpus.append(mImg, mShape, mRect)
			report.Appended++
		}
	}

	if report.Appended == 0 {
		return report, fmt.Errorf("%w from %s", ErrNoEntries, dir)
	}
	return report, nil
}

func decodeCandidate(base string) (*image.NRGBA, error) {
	path, err := codec.FindImage(base)
	if err != nil {
		return nil, err
	}
	return codec.DecodeGrayscale(path)
}
