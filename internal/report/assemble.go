package report

import (
	"bytes"
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// Document Assembly
// ---------------------------------------------------------------------------

const (
	breakdownTitle = "Resumen por tipo de pago"
	receiptsTitle  = "Detalle de recibos"
	noBreakdown    = "Sin movimientos por tipo de pago"
	noReceipts     = "Sin recibos en el periodo"
)

// Render lays out the closing report. Malformed input never fails the
// render: missing values are drawn as placeholders and non-finite amounts
// as zero. The only error is a failure to load font metrics.
//
// Sections run in a fixed order: banner, meta, summary, breakdown, table
// header, then one row at a time with a page break and repeated headers
// whenever a row would not fit. Footers are stamped once every page exists.
func Render(in Input, opts Options) (*Document, error) {
	metrics := opts.Metrics
	if metrics == nil {
		fm, err := NewFontMetrics()
		if err != nil {
			return nil, err
		}
		metrics = fm
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	size := LookupPageSize(opts.PageSize)
	margin := opts.Margin
	if margin <= 0 || !size.MarginFits(margin) {
		margin = defaultMargin
	}

	r := &renderer{
		doc:     NewDocument(size.Width, size.Height),
		metrics: metrics,
		fit:     NewFitter(metrics),
		view:    buildView(in, opts),
	}
	r.doc.Title = "Corte de caja " + r.view.RangeValue
	r.doc.Author = opts.Author
	r.doc.Created = opts.GeneratedAt

	c := r.newPage(Cursor{
		PageWidth:  size.Width,
		PageHeight: size.Height,
		Margin:     margin,
		Left:       margin,
		Right:      size.Width - margin,
	})
	c = r.banner(c)
	c = r.meta(c)
	c = r.summary(c)
	c = r.table(c, breakdownTitle, LayoutColumns(c.Width(), breakdownColumns, "tipo"), r.view.Breakdown, noBreakdown)
	c = r.table(c, receiptsTitle, LayoutColumns(c.Width(), receiptColumns, "concepto"), r.view.Receipts, noReceipts)
	r.stampFooters(c)

	return r.doc, nil
}

// table draws a titled table whose rows never split across pages. The
// title and header are kept together with the first row.
func (r *renderer) table(c Cursor, title string, cols []Column, rows []tableRow, empty string) Cursor {
	if len(rows) == 0 {
		c = r.EnsureSpace(c, titleHeight+emptyHeight, r.pageContext)
		c = r.sectionTitle(c, title)
		c = r.emptyState(c, empty)
		return c.Advance(sectionGap)
	}

	c = r.EnsureSpace(c, titleHeight+headerHeight+rowHeight+rowMargin, r.pageContext)
	c = r.sectionTitle(c, title)
	c = r.tableHeader(c, cols)

	onNewPage := r.continuation(title, cols)
	for i, row := range rows {
		c = r.EnsureSpace(c, rowHeight+rowMargin, onNewPage)
		c = r.drawRow(c, cols, row, i)
	}
	return c.Advance(sectionGap)
}

// stampFooters writes "Generado" and "Página i/N" on every page. It runs
// after the last row is placed, when N is known.
func (r *renderer) stampFooters(c Cursor) {
	total := r.doc.PageCount()
	lineY := c.Bottom() + 14
	baseline := c.Bottom() + footerBaseline

	generated := "Generado: " + r.view.Generated
	center := r.view.ReportID
	centerWidth := r.metrics.Width(FontRegular, center, sizeFooter)

	for i, p := range r.doc.Pages {
		p.add(LineOp{X1: c.Left, Y1: lineY, X2: c.Right, Y2: lineY, Width: 0.5, Color: colorDivider})
		p.add(TextOp{X: c.Left, Y: baseline, Text: generated, Font: FontRegular, Size: sizeFooter, Color: colorMuted})
		p.add(TextOp{
			X: c.Left + (c.Width()-centerWidth)/2, Y: baseline,
			Text: center, Font: FontRegular, Size: sizeFooter, Color: colorMuted,
		})

		label := PageLabel(i+1, total)
		width := r.metrics.Width(FontRegular, label, sizeFooter)
		p.add(TextOp{X: c.Right - width, Y: baseline, Text: label, Font: FontRegular, Size: sizeFooter, Color: colorMuted})
	}
}

// PageLabel formats the page number footer.
func PageLabel(page, total int) string {
	return fmt.Sprintf("Página %d/%d", page, total)
}

// Build renders and encodes the report, returning the PDF bytes together
// with the document that produced them.
func Build(in Input, opts Options) ([]byte, *Document, error) {
	doc, err := Render(in, opts)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), doc, nil
}
