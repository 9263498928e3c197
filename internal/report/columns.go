package report

import "math"

// ---------------------------------------------------------------------------
// Table Columns
// ---------------------------------------------------------------------------

// Column describes one table column.
type Column struct {
	Key        string
	Header     string
	Width      float64
	AlignRight bool
}

// LayoutColumns returns a copy of cols whose widths sum exactly to total.
// The column named flexKey takes whatever the others leave; when the fixed
// columns alone exceed total they are scaled down and the flexible column
// collapses to zero. Without a flexible column the last column is used.
// A total that is not positive leaves the flexible column at zero.
func LayoutColumns(total float64, cols []Column, flexKey string) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	if len(out) == 0 {
		return out
	}

	flex := len(out) - 1
	for i, c := range out {
		if c.Key == flexKey {
			flex = i
			break
		}
	}

	var fixed float64
	for i, c := range out {
		if i != flex {
			fixed += c.Width
		}
	}
	if fixed > total && fixed > 0 {
		scale := total / fixed
		for i := range out {
			if i != flex {
				out[i].Width *= scale
			}
		}
	}

	out[flex].Width = 0
	if !(total > 0) {
		return out
	}
	out[flex].Width = math.Max(0, total-sumWidths(out))
	if sumWidths(out) == total {
		return out
	}

	// Float addition is order dependent. When the plain remainder misses,
	// the ordered sum is settled on the flexible column. Rounding in the
	// columns after it can skip the exact total, in which case the other
	// columns absorb the last ulp, starting from the right.
	if settleWidth(out, flex, total) {
		return out
	}
	for i := len(out) - 1; i >= 0; i-- {
		if i != flex && settleWidth(out, i, total) {
			break
		}
	}
	return out
}

// settleWidth searches for the smallest width of column i in [0, total]
// whose ordered sum reaches total and reports whether it hits it exactly.
// Non-negative floats order like their bit patterns and the ordered sum
// is monotone in any one width, so the search bisects over the bits.
func settleWidth(cols []Column, i int, total float64) bool {
	lo, hi := uint64(0), math.Float64bits(total)
	for lo < hi {
		mid := lo + (hi-lo)/2
		cols[i].Width = math.Float64frombits(mid)
		if sumWidths(cols) < total {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	cols[i].Width = math.Float64frombits(lo)
	return sumWidths(cols) == total
}

func sumWidths(cols []Column) float64 {
	var sum float64
	for _, c := range cols {
		sum += c.Width
	}
	return sum
}

// columnOffsets returns the left edge of every column starting at left.
func columnOffsets(left float64, cols []Column) []float64 {
	offsets := make([]float64, len(cols))
	x := left
	for i, c := range cols {
		offsets[i] = x
		x += c.Width
	}
	return offsets
}

var receiptColumns = []Column{
	{Key: "folio", Header: "Folio", Width: 62},
	{Key: "fecha", Header: "Fecha", Width: 56},
	{Key: "alumno", Header: "Alumno", Width: 118},
	{Key: "concepto", Header: "Concepto"},
	{Key: "tipo", Header: "Tipo de pago", Width: 70},
	{Key: "estatus", Header: "Estatus", Width: 56},
	{Key: "monto", Header: "Monto", Width: 78, AlignRight: true},
}

var breakdownColumns = []Column{
	{Key: "tipo", Header: "Tipo de pago"},
	{Key: "recibos", Header: "Recibos", Width: 80, AlignRight: true},
	{Key: "monto", Header: "Monto", Width: 120, AlignRight: true},
}
