package geometry

// Shape is an ordered set of 2-D landmark coordinates stored as two
// parallel rows: X[i] and Y[i] together form landmark i. Column order
// carries landmark identity and is preserved by every transform.
type Shape struct {
	X []float64
	Y []float64
}

// Rect is a four-corner bounding region using the same parallel-row
// convention as Shape so both transform uniformly. Corner order is
// top-left, top-right, bottom-left, bottom-right.
type Rect struct {
	X []float64
	Y []float64
}

// NewShape allocates a zero-initialized shape with n landmarks.
func NewShape(n int) Shape {
	return Shape{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// NewRect builds an axis-aligned rectangle from its extreme coordinates.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		X: []float64{minX, maxX, minX, maxX},
		Y: []float64{minY, minY, maxY, maxY},
	}
}

// Len returns the number of landmarks.
func (s Shape) Len() int {
	return len(s.X)
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	c := NewShape(s.Len())
	copy(c.X, s.X)
	copy(c.Y, s.Y)
	return c
}

// Scale multiplies every coordinate by f in place.
func (s Shape) Scale(f float64) {
	for i := range s.X {
		s.X[i] *= f
		s.Y[i] *= f
	}
}

// ScaleAxes multiplies the x row by fx and the y row by fy in place.
// Used to lift normalized coordinates into pixel space.
func (s Shape) ScaleAxes(fx, fy float64) {
	for i := range s.X {
		s.X[i] *= fx
		s.Y[i] *= fy
	}
}

// MirrorX returns a horizontally flipped copy of the shape for an image
// of the given pixel width: x' = (width-1) - x, y' = y. Column order is
// unchanged, so landmark identity stays positional; a left-eye column
// still sits at its original index even though it now occupies the
// geometric position of the right eye.
func (s Shape) MirrorX(width int) Shape {
	m := NewShape(s.Len())
	w := float64(width - 1)
	for i := range s.X {
		m.X[i] = w - s.X[i]
		m.Y[i] = s.Y[i]
	}
	return m
}

// Bounds returns the tight axis-aligned bounding rectangle of the shape.
func (s Shape) Bounds() Rect {
	if s.Len() == 0 {
		return NewRect(0, 0, 0, 0)
	}
	minX, maxX := s.X[0], s.X[0]
	minY, maxY := s.Y[0], s.Y[0]
	for i := 1; i < s.Len(); i++ {
		if s.X[i] < minX {
			minX = s.X[i]
		}
		if s.X[i] > maxX {
			maxX = s.X[i]
		}
		if s.Y[i] < minY {
			minY = s.Y[i]
		}
		if s.Y[i] > maxY {
			maxY = s.Y[i]
		}
	}
	return NewRect(minX, minY, maxX, maxY)
}

// Len returns the number of corner points.
func (r Rect) Len() int {
	return len(r.X)
}

// Clone returns an independent copy of the rectangle.
func (r Rect) Clone() Rect {
	c := Rect{
		X: make([]float64, len(r.X)),
		Y: make([]float64, len(r.Y)),
	}
	copy(c.X, r.X)
	copy(c.Y, r.Y)
	return c
}

// Scale multiplies every corner coordinate by f in place.
func (r Rect) Scale(f float64) {
	for i := range r.X {
		r.X[i] *= f
		r.Y[i] *= f
	}
}

// MirrorX returns a horizontally flipped copy of the rectangle, using
// the same transform as Shape.MirrorX.
func (r Rect) MirrorX(width int) Rect {
	m := Rect{
		X: make([]float64, len(r.X)),
		Y: make([]float64, len(r.Y)),
	}
	w := float64(width - 1)
	for i := range r.X {
		m.X[i] = w - r.X[i]
		m.Y[i] = r.Y[i]
	}
	return m
}
