package importer

// needsScaling decides whether an image exceeds the configured maximum
// side length and returns the uniform shrink factor. The boundary is
// inclusive: an image whose longer side equals maxSide is left alone.
// The returned factor is always <= 1; this policy only shrinks.
func needsScaling(width, height, maxSide int) (float64, bool) {
	if maxSide <= 0 {
		return 1, false
	}
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxSide {
		return 1, false
	}
	return float64(maxSide) / float64(longest), true
}
