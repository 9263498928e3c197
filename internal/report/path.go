package report

import "math"

// ---------------------------------------------------------------------------
// Path Builder
// ---------------------------------------------------------------------------

// kappa places cubic Bézier control points so the curve approximates a
// quarter circle.
const kappa = 0.5522847498

// PathOp identifies a path command.
type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
	CurveTo
	ClosePath
)

// Point is a position in page coordinates (points, y grows downward).
type Point struct {
	X, Y float64
}

// PathCmd is one command of a vector path. CurveTo uses C1 and C2 as
// control points and To as the end point; MoveTo and LineTo use To only.
type PathCmd struct {
	Op     PathOp
	To     Point
	C1, C2 Point
}

// Path is an ordered list of path commands.
type Path []PathCmd

// ClampRadius returns the corner radius actually used for a w x h
// rectangle.
func ClampRadius(w, h, r float64) float64 {
	limit := math.Min(w, h) / 2
	if limit < 0 {
		limit = 0
	}
	if r < 0 {
		return 0
	}
	return math.Min(r, limit)
}

// RoundedRect builds a closed rounded rectangle with top-left corner (x, y).
// The contour runs clockwise on the page: top edge, top-right arc, right
// edge, bottom-right arc, bottom edge, bottom-left arc, left edge, top-left
// arc, and ends where it started.
func RoundedRect(x, y, w, h, r float64) Path {
	r = ClampRadius(w, h, r)
	k := r * kappa
	right, bottom := x+w, y+h

	return Path{
		{Op: MoveTo, To: Point{x + r, y}},
		{Op: LineTo, To: Point{right - r, y}},
		{Op: CurveTo, C1: Point{right - r + k, y}, C2: Point{right, y + r - k}, To: Point{right, y + r}},
		{Op: LineTo, To: Point{right, bottom - r}},
		{Op: CurveTo, C1: Point{right, bottom - r + k}, C2: Point{right - r + k, bottom}, To: Point{right - r, bottom}},
		{Op: LineTo, To: Point{x + r, bottom}},
		{Op: CurveTo, C1: Point{x + r - k, bottom}, C2: Point{x, bottom - r + k}, To: Point{x, bottom - r}},
		{Op: LineTo, To: Point{x, y + r}},
		{Op: CurveTo, C1: Point{x, y + r - k}, C2: Point{x + r - k, y}, To: Point{x + r, y}},
		{Op: ClosePath},
	}
}
