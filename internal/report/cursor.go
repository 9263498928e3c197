package report

// ---------------------------------------------------------------------------
// Layout Cursor
// ---------------------------------------------------------------------------

// Cursor is the current write position. Y is measured from the top edge
// of the page and grows downward. Renderers take a cursor by value and
// return the advanced one.
type Cursor struct {
	Page       int
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Left       float64
	Right      float64
	Y          float64
}

// Width is the drawable width between the margins.
func (c Cursor) Width() float64 {
	return c.Right - c.Left
}

// Top is the first writable Y of a page.
func (c Cursor) Top() float64 {
	return c.Margin
}

// Bottom is the last writable Y before the footer band.
func (c Cursor) Bottom() float64 {
	return c.PageHeight - c.Margin - footerReserve
}

// Remaining is the vertical space left above the footer band.
func (c Cursor) Remaining() float64 {
	return c.Bottom() - c.Y
}

// Advance moves the cursor down by dy.
func (c Cursor) Advance(dy float64) Cursor {
	c.Y += dy
	return c
}

// ---------------------------------------------------------------------------
// Pagination
// ---------------------------------------------------------------------------

// newPage appends a page, paints its background and returns a cursor at
// its top.
func (r *renderer) newPage(c Cursor) Cursor {
	c.Page = r.doc.AddPage()
	c.Y = c.Top()
	r.page(c).add(RectOp{X: 0, Y: 0, W: c.PageWidth, H: c.PageHeight, Fill: colorPage})
	return c
}

// EnsureSpace guarantees that a block of height needed fits below c.
// When it does not, a new page is started and onNewPage, if set, redraws
// the continuation context on it. A cursor already at the top of a page
// is returned as is: oversized blocks are drawn rather than paginated
// forever.
func (r *renderer) EnsureSpace(c Cursor, needed float64, onNewPage func(Cursor) Cursor) Cursor {
	if c.Y+needed <= c.Bottom() || c.Y <= c.Top() {
		return c
	}
	c = r.newPage(c)
	if onNewPage != nil {
		c = onNewPage(c)
	}
	return c
}
