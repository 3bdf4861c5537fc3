package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/menta2k/landmark-dataset/internal/config"
	"github.com/menta2k/landmark-dataset/pkg/importer"
	"github.com/menta2k/landmark-dataset/pkg/parser"
	"github.com/menta2k/landmark-dataset/pkg/rectio"
)

func main() {
	var dir, rects, cfgPath, saveRects string
	var maxSide int
	var mirror bool
	var verbose bool

	flag.StringVar(&dir, "dir", "", "dataset directory (IMM/ASF or iBug/PTS)")
	flag.StringVar(&rects, "rects", "", "optional rectangle list file")
	flag.StringVar(&cfgPath, "config", "", "YAML config file (flags override its values)")
	flag.IntVar(&maxSide, "maxside", 0, "max image side length in px, 0=unbounded")
	flag.BoolVar(&mirror, "mirror", false, "append horizontally mirrored copies")
	flag.StringVar(&saveRects, "saverects", "", "write the resulting rectangles to this file")
	flag.BoolVar(&verbose, "v", false, "list skipped candidates")

	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if dir != "" {
		cfg.Dataset.Dir = dir
	}
	if rects != "" {
		cfg.Dataset.RectangleFile = rects
	}
	if maxSide != 0 {
		cfg.Import.MaxImageSideLength = maxSide
	}
	if mirror {
		cfg.Import.GenerateMirrored = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("usage: %s -dir dataset_dir [-rects rect_file] [-maxside 640] [-mirror] [-config config.yaml]: %v",
			filepath.Base(os.Args[0]), err)
	}

	opts := importer.Options{
		MaxImageSideLength: cfg.Import.MaxImageSideLength,
		GenerateMirrored:   cfg.Import.GenerateMirrored,
	}

	log.Printf("Loading %s database from %s", parser.DetectFormat(cfg.Dataset.Dir), cfg.Dataset.Dir)

	corpus, report, err := importer.Import(cfg.Dataset.Dir, cfg.Dataset.RectangleFile, opts)
	if verbose {
		for _, s := range report.Skipped {
			log.Printf("skipped %s: %s", s.Base, s.Reason)
		}
	}
	if err != nil {
		log.Fatalf("import failed after %d entries: %v", report.Appended, err)
	}

	fmt.Println(report)

	if saveRects != "" {
		if err := rectio.ExportRectangles(saveRects, corpus.Rects); err != nil {
			log.Fatalf("failed to save rectangles: %v", err)
		}
		log.Printf("Wrote %d rectangles to %s", len(corpus.Rects), saveRects)
	}
}
