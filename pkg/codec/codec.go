// Package codec is the image I/O service behind the dataset importer:
// grayscale decode, uniform resize and horizontal flip.
package codec

import (
	"fmt"
	"image"
	"math"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/landmark-dataset/internal/utils"
)

// imageExtensions are tried in order when resolving an annotation's
// sibling image; jpg first matches the datasets' native packaging.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp"}

// FindImage resolves the image file belonging to an annotation base
// path (the annotation path with its extension stripped).
func FindImage(base string) (string, error) {
	for _, ext := range imageExtensions {
		if utils.FileExists(base + ext) {
			return base + ext, nil
		}
	}
	return "", fmt.Errorf("no image found for %s", base)
}

// LoadImage loads an image from a file path with WebP support
func LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// DecodeGrayscale loads an image and reduces it to a single intensity
// channel. The result is a fresh NRGBA whose channels all carry the
// luminance value.
func DecodeGrayscale(path string) (*image.NRGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Grayscale(img), nil
}

// Resize scales an image by a uniform factor using Catmull-Rom (cubic)
// interpolation. Target dimensions are rounded and clamped to at least
// one pixel.
func Resize(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.CatmullRom)
}

// FlipH returns the image mirrored left-right.
func FlipH(img image.Image) *image.NRGBA {
	return imaging.FlipH(img)
}
