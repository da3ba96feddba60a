package model

import "math"

// Point represents a 2D point in page pixel space (Y increases downward,
// matching scanned-image coordinates).
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Quad is a four-point quadrilateral bounding a recognized text line.
// OCR providers report quadrilaterals rather than rectangles because
// scanned pages are rarely perfectly axis-aligned. Points are ordered
// top-left, top-right, bottom-right, bottom-left in pixel space.
type Quad struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
	X3 float64 `json:"x3"`
	Y3 float64 `json:"y3"`
	X4 float64 `json:"x4"`
	Y4 float64 `json:"y4"`
}

// NewQuadFromRect creates an axis-aligned quad from a top-left corner
// and dimensions.
func NewQuadFromRect(x, y, width, height float64) Quad {
	return Quad{
		X1: x, Y1: y,
		X2: x + width, Y2: y,
		X3: x + width, Y3: y + height,
		X4: x, Y4: y + height,
	}
}

// Left returns the leftmost X coordinate
func (q Quad) Left() float64 {
	return math.Min(math.Min(q.X1, q.X2), math.Min(q.X3, q.X4))
}

// Right returns the rightmost X coordinate
func (q Quad) Right() float64 {
	return math.Max(math.Max(q.X1, q.X2), math.Max(q.X3, q.X4))
}

// Top returns the topmost Y coordinate (smallest, since Y grows downward)
func (q Quad) Top() float64 {
	return math.Min(math.Min(q.Y1, q.Y2), math.Min(q.Y3, q.Y4))
}

// Bottom returns the bottommost Y coordinate
func (q Quad) Bottom() float64 {
	return math.Max(math.Max(q.Y1, q.Y2), math.Max(q.Y3, q.Y4))
}

// Width returns the horizontal extent
func (q Quad) Width() float64 {
	return q.Right() - q.Left()
}

// Height returns the vertical extent
func (q Quad) Height() float64 {
	return q.Bottom() - q.Top()
}

// Center returns the center point of the quad's axis-aligned extent
func (q Quad) Center() Point {
	return Point{
		X: (q.Left() + q.Right()) / 2,
		Y: (q.Top() + q.Bottom()) / 2,
	}
}

// IsValid returns true if the quad has positive extent in both axes
func (q Quad) IsValid() bool {
	return q.Width() > 0 && q.Height() > 0
}
