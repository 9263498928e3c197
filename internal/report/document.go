package report

import "time"

// ---------------------------------------------------------------------------
// Display List
// ---------------------------------------------------------------------------

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Op is a drawing primitive recorded on a page.
type Op interface {
	isOp()
}

// TextOp draws a single-line text run with its baseline at Y.
type TextOp struct {
	X, Y  float64
	Text  string
	Font  Font
	Size  float64
	Color Color
}

// LineOp strokes a straight line.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// RectOp fills a sharp-cornered rectangle.
type RectOp struct {
	X, Y, W, H float64
	Fill       Color
}

// ShapeOp fills and/or strokes a vector path.
type ShapeOp struct {
	Path      Path
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

func (TextOp) isOp()  {}
func (LineOp) isOp()  {}
func (RectOp) isOp()  {}
func (ShapeOp) isOp() {}

// Page accumulates the primitives drawn on one page.
type Page struct {
	Ops []Op
}

func (p *Page) add(op Op) {
	p.Ops = append(p.Ops, op)
}

// Document is an ordered list of pages of equal size.
type Document struct {
	Width, Height float64
	Title         string
	Author        string
	Created       time.Time
	Pages         []*Page
}

// NewDocument returns an empty document with the given page size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// AddPage appends a page and returns its zero-based index.
func (d *Document) AddPage() int {
	d.Pages = append(d.Pages, &Page{})
	return len(d.Pages) - 1
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
