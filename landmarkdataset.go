// Package landmarkdataset imports facial landmark annotation datasets
// into a uniform in-memory training corpus.
//
// Two on-disk dataset families are supported: the IMM database with its
// ASF annotation files (image-normalized coordinates) and the iBug
// databases with PTS annotation files (1-based pixel coordinates). Both
// normalize to the same corpus shape: one grayscale image, one ordered
// set of 2-D landmarks and one bounding rectangle per example.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		landmarkdataset "github.com/menta2k/landmark-dataset"
//	)
//
//	func main() {
//		corpus, report, err := landmarkdataset.Import("./data/imm", "", landmarkdataset.Options{
//			MaxImageSideLength: 640,
//			GenerateMirrored:   true,
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Println(report)
//		fmt.Printf("Corpus holds %d examples\n", corpus.Len())
//	}
//
// The package consists of four working components:
//
// 1. Parser (pkg/parser): format detection and the ASF/PTS shape parsers
// 2. Rectio (pkg/rectio): optional external rectangle list files
// 3. Codec (pkg/codec): grayscale decode, uniform resize, horizontal flip
// 4. Importer (pkg/importer): the orchestrating import pipeline
//
// The importer enumerates annotation files in stable sorted order (the
// same order used to associate external rectangles positionally), skips
// individual candidates whose annotation or image cannot be read, and
// reports what happened in a structured Report instead of logging.
//
// Mirrored augmentation doubles the corpus with left-right flipped
// copies. Landmark columns keep their index through the flip; consumers
// relying on semantic left/right landmark identity must handle the swap
// themselves.
package landmarkdataset

import (
	"github.com/menta2k/landmark-dataset/pkg/importer"
	"github.com/menta2k/landmark-dataset/pkg/parser"
)

// Version of the landmark dataset library
const Version = "1.0.0"

// Format identifies a dataset dialect.
type Format = parser.Format

// Supported dataset formats.
const (
	FormatUnknown = parser.FormatUnknown
	FormatIMM     = parser.FormatIMM
	FormatIBUG    = parser.FormatIBUG
)

// Options controls an import run. See importer.Options.
type Options = importer.Options

// Corpus is the imported training set. See importer.Corpus.
type Corpus = importer.Corpus

// Report carries import diagnostics. See importer.Report.
type Report = importer.Report

// Fatal import failures, re-exported for errors.Is checks.
var (
	ErrUnknownFormat     = importer.ErrUnknownFormat
	ErrRectCountMismatch = importer.ErrRectCountMismatch
	ErrNoEntries         = importer.ErrNoEntries
)

// DetectFormat probes a dataset directory for its annotation dialect.
func DetectFormat(dir string) Format {
	return parser.DetectFormat(dir)
}

// Import loads a dataset directory into a fresh corpus. rectFile may be
// empty; every example then falls back to the tight bounds of its shape.
func Import(dir, rectFile string, opts Options) (*Corpus, Report, error) {
	return importer.Import(dir, rectFile, opts)
}

// ImportInto appends a dataset directory to an existing corpus,
// preserving prior entries.
func ImportInto(corpus *Corpus, dir, rectFile string, opts Options) (Report, error) {
	return importer.ImportInto(corpus, dir, rectFile, opts)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
