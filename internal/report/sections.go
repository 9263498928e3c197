package report

// ---------------------------------------------------------------------------
// Section Renderers
// ---------------------------------------------------------------------------

// renderer draws the sections of one report. It is used by a single
// Render call and never shared.
type renderer struct {
	doc     *Document
	metrics Metrics
	fit     *Fitter
	view    view
}

func (r *renderer) page(c Cursor) *Page {
	return r.doc.Pages[c.Page]
}

// banner draws the title band with the right-justified period label.
func (r *renderer) banner(c Cursor) Cursor {
	p := r.page(c)
	top := c.Y
	p.add(RectOp{X: c.Left, Y: top, W: c.Width(), H: bannerHeight, Fill: colorPrimary})
	p.add(RectOp{X: c.Left, Y: top + bannerHeight - bannerStrip, W: c.Width(), H: bannerStrip, Fill: colorAccent})

	const inset = 14.0
	var labelWidth float64
	if r.view.RangeLabel != "" {
		label := r.fit.Fit(FontBold, r.view.RangeLabel, sizeRange, c.Width()/2-inset)
		labelWidth = r.metrics.Width(FontBold, label, sizeRange)
		p.add(TextOp{
			X: c.Right - inset - labelWidth, Y: top + 26,
			Text: label, Font: FontBold, Size: sizeRange, Color: colorOnPrimary,
		})
	}

	titleWidth := c.Width() - 2*inset - labelWidth - inset
	baselines := []float64{top + 26, top + 41, top + 53}
	for i, line := range r.view.Title {
		if i == len(baselines) {
			break
		}
		font, size, color := FontRegular, sizeSubtitle, colorOnPrimaryLo
		if i == 0 {
			font, size, color = FontBold, sizeTitle, colorOnPrimary
		}
		p.add(TextOp{
			X: c.Left + inset, Y: baselines[i],
			Text: r.fit.Fit(font, line, size, titleWidth), Font: font, Size: size, Color: color,
		})
	}
	return c.Advance(bannerHeight + bannerGap)
}

// meta draws the period and branch pairs followed by a divider.
func (r *renderer) meta(c Cursor) Cursor {
	p := r.page(c)
	half := c.Width() / 2
	baseline := c.Y + 11

	r.pair(p, c.Left, baseline, "Periodo:", r.view.RangeValue, half-cellPadding)
	r.pair(p, c.Left+half, baseline, "Plantel:", r.view.Branch, half)

	p.add(LineOp{X1: c.Left, Y1: c.Y + metaHeight, X2: c.Right, Y2: c.Y + metaHeight, Width: 0.5, Color: colorDivider})
	return c.Advance(metaHeight + metaGap)
}

// pair draws a bold label followed by its value within maxWidth.
func (r *renderer) pair(p *Page, x, baseline float64, label, value string, maxWidth float64) {
	label = r.fit.Fit(FontBold, label, sizeMeta, maxWidth)
	lw := r.metrics.Width(FontBold, label, sizeMeta)
	p.add(TextOp{X: x, Y: baseline, Text: label, Font: FontBold, Size: sizeMeta, Color: colorText})

	const gap = 4.0
	value = r.fit.Fit(FontRegular, value, sizeMeta, maxWidth-lw-gap)
	p.add(TextOp{X: x + lw + gap, Y: baseline, Text: value, Font: FontRegular, Size: sizeMeta, Color: colorText})
}

// summary draws one rounded card split into a column per metric.
func (r *renderer) summary(c Cursor) Cursor {
	p := r.page(c)
	metrics := r.view.Summary
	if len(metrics) == 0 {
		return c
	}

	fill, stroke := colorCard, colorDivider
	p.add(ShapeOp{
		Path:      RoundedRect(c.Left, c.Y, c.Width(), cardHeight, cardRadius),
		Fill:      &fill,
		Stroke:    &stroke,
		LineWidth: 0.75,
	})

	const inset = 10.0
	colWidth := c.Width() / float64(len(metrics))
	for i, m := range metrics {
		x := c.Left + float64(i)*colWidth
		if i > 0 {
			p.add(LineOp{X1: x, Y1: c.Y + inset, X2: x, Y2: c.Y + cardHeight - inset, Width: 0.5, Color: colorDivider})
		}
		p.add(TextOp{
			X: x + inset, Y: c.Y + 19,
			Text: r.fit.Fit(FontRegular, m.Label, sizeCardLabel, colWidth-2*inset),
			Font: FontRegular, Size: sizeCardLabel, Color: colorMuted,
		})
		p.add(TextOp{
			X: x + inset, Y: c.Y + 40,
			Text: r.fit.Fit(FontBold, m.Value, sizeCardValue, colWidth-2*inset),
			Font: FontBold, Size: sizeCardValue, Color: colorText,
		})
	}
	return c.Advance(cardHeight + cardGap)
}

// sectionTitle draws a section heading.
func (r *renderer) sectionTitle(c Cursor, title string) Cursor {
	r.page(c).add(TextOp{
		X: c.Left, Y: c.Y + 12,
		Text: r.fit.Fit(FontBold, title, sizeSection, c.Width()),
		Font: FontBold, Size: sizeSection, Color: colorPrimary,
	})
	return c.Advance(titleHeight)
}

// tableHeader draws the column labels on a tinted band.
func (r *renderer) tableHeader(c Cursor, cols []Column) Cursor {
	p := r.page(c)
	p.add(RectOp{X: c.Left, Y: c.Y, W: c.Width(), H: headerHeight, Fill: colorTableHeader})

	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.Header
	}
	r.cells(p, c, cols, labels, FontBold, sizeTableHead, c.Y+12, colorPrimary)

	p.add(LineOp{X1: c.Left, Y1: c.Y + headerHeight, X2: c.Right, Y2: c.Y + headerHeight, Width: 0.75, Color: colorPrimary})
	return c.Advance(headerHeight)
}

// drawRow draws one table row; odd rows get the zebra tint.
func (r *renderer) drawRow(c Cursor, cols []Column, row tableRow, index int) Cursor {
	p := r.page(c)
	if index%2 == 1 {
		p.add(RectOp{X: c.Left, Y: c.Y, W: c.Width(), H: rowHeight, Fill: colorZebra})
	}

	color := colorText
	if row.Cancelled {
		color = colorDanger
	}
	r.cells(p, c, cols, row.Cells, FontRegular, sizeTableCell, c.Y+11, color)

	p.add(LineOp{X1: c.Left, Y1: c.Y + rowHeight, X2: c.Right, Y2: c.Y + rowHeight, Width: 0.25, Color: colorDivider})
	return c.Advance(rowHeight)
}

// cells places one fitted value per column. Right-aligned columns end at
// the column's right edge minus padding.
func (r *renderer) cells(p *Page, c Cursor, cols []Column, values []string, font Font, size, baseline float64, color Color) {
	offsets := columnOffsets(c.Left, cols)
	for i, col := range cols {
		var value string
		if i < len(values) {
			value = values[i]
		}
		text := r.fit.Fit(font, value, size, col.Width-2*cellPadding)

		x := offsets[i] + cellPadding
		if col.AlignRight {
			x = offsets[i] + col.Width - cellPadding - r.metrics.Width(font, text, size)
		}
		p.add(TextOp{X: x, Y: baseline, Text: text, Font: font, Size: size, Color: color})
	}
}

// emptyState draws a divider with a short notice in place of a table.
func (r *renderer) emptyState(c Cursor, notice string) Cursor {
	p := r.page(c)
	p.add(LineOp{X1: c.Left, Y1: c.Y + 6, X2: c.Right, Y2: c.Y + 6, Width: 0.5, Color: colorDivider})
	p.add(TextOp{
		X: c.Left, Y: c.Y + 20,
		Text: r.fit.Fit(FontRegular, notice, sizeTableCell, c.Width()),
		Font: FontRegular, Size: sizeTableCell, Color: colorMuted,
	})
	return c.Advance(emptyHeight)
}

// pageContext repeats the banner and meta strip at the top of a
// continuation page.
func (r *renderer) pageContext(c Cursor) Cursor {
	c = r.banner(c)
	return r.meta(c)
}

// continuation returns the onNewPage callback for a paginated table.
func (r *renderer) continuation(title string, cols []Column) func(Cursor) Cursor {
	return func(c Cursor) Cursor {
		c = r.pageContext(c)
		c = r.sectionTitle(c, title+continuedLabel)
		return r.tableHeader(c, cols)
	}
}
