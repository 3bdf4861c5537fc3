package importer

import (
	"image"

	"github.com/menta2k/landmark-dataset/pkg/codec"
	"github.com/menta2k/landmark-dataset/pkg/geometry"
)

// mirror derives the horizontally flipped variant of an example. The
// inputs are left untouched; the mirrored triple is appended alongside
// the original, never in its place. Landmark columns keep their index,
// so semantic left/right identity is NOT swapped here.
func mirror(img *image.NRGBA, s geometry.Shape, r geometry.Rect) (*image.NRGBA, geometry.Shape, geometry.Rect) {
	width := img.Bounds().Dx()
	return codec.FlipH(img), s.MirrorX(width), r.MirrorX(width)
}
