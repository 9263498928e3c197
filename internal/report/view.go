package report

import (
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"cortecaja/internal/calendar"
)

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Options control a single render.
type Options struct {
	// Filter is the UI selection; it overrides the range and branch of the
	// Input when set.
	Filter *Filter
	// BranchLabel is the display name of the selected branch.
	BranchLabel string
	// School is printed under the report title.
	School string
	// Author is stored in the PDF metadata.
	Author string
	// PageSize is "letter" (default), "legal" or "a4".
	PageSize string
	// Margin in points; zero means 36.
	Margin float64
	// GeneratedAt is printed in every footer; zero means now.
	GeneratedAt time.Time
	// ReportID overrides the random report reference.
	ReportID string
	// Metrics measures text; nil loads the core font metrics.
	Metrics Metrics
	// Calendar counts business days; nil uses the federal calendar.
	Calendar *cal.BusinessCalendar
}

// ---------------------------------------------------------------------------
// Pre-formatted view of the Input
// ---------------------------------------------------------------------------

type metric struct {
	Label string
	Value string
}

type tableRow struct {
	Cells     []string
	Cancelled bool
}

// view holds every string the section renderers draw, already formatted.
type view struct {
	Title      []string
	RangeLabel string
	RangeValue string
	Branch     string
	ReportID   string
	Generated  string
	Summary    []metric
	Breakdown  []tableRow
	Receipts   []tableRow
}

// Selection resolves the range and branch a report covers. A filter wins
// over the input: its dates when either is set, its branch always.
func Selection(in Input, f *Filter) (start, end string, branchID FlexString) {
	start, end, branchID = in.StartDate, in.EndDate, in.BranchID
	if f != nil {
		if f.StartDate != "" || f.EndDate != "" {
			start, end = f.StartDate, f.EndDate
		}
		branchID = f.BranchID
	}
	return start, end, branchID
}

func buildView(in Input, opts Options) view {
	start, end, branchID := Selection(in, opts.Filter)

	id := opts.ReportID
	if id == "" {
		id = reportID(opts.GeneratedAt)
	}

	subtitle := "Folio de reporte " + id
	if school := strings.TrimSpace(opts.School); school != "" {
		subtitle = school + "  |  " + subtitle
	}

	rangeValue := FormatRange(start, end)
	rangeLabel := ""
	if rangeValue != "" {
		rangeLabel = "Periodo: " + rangeValue
	}

	v := view{
		Title:      []string{"Corte de caja", subtitle},
		RangeLabel: rangeLabel,
		RangeValue: rangeValue,
		Branch:     branchLabel(branchID, opts.BranchLabel),
		ReportID:   id,
		Generated:  FormatTimestamp(opts.GeneratedAt),
		Summary:    summaryMetrics(in.Summary, start, end, opts.Calendar),
	}

	for _, c := range in.ByCategory {
		v.Breakdown = append(v.Breakdown, tableRow{Cells: []string{
			c.Label,
			FormatCount(int(c.Receipts)),
			FormatMoney(float64(c.Amount), defaultCurrency),
		}})
	}
	for _, r := range in.Receipts {
		v.Receipts = append(v.Receipts, receiptRow(r))
	}
	return v
}

// IsAllBranches reports whether id selects every branch.
func IsAllBranches(id FlexString) bool {
	switch strings.ToLower(strings.TrimSpace(string(id))) {
	case "", "all", "todos", "0":
		return true
	}
	return false
}

func branchLabel(id FlexString, label string) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	if IsAllBranches(id) {
		return "Todos"
	}
	return "Plantel " + string(id)
}

func summaryMetrics(s Summary, start, end string, c *cal.BusinessCalendar) []metric {
	return []metric{
		{Label: "Recibos", Value: FormatCount(int(s.TotalReceipts))},
		{Label: "Monto total", Value: FormatMoney(float64(s.TotalAmount), defaultCurrency)},
		{Label: "Cancelados", Value: FormatCount(int(s.CancelledCount))},
		{Label: "Monto cancelado", Value: FormatMoney(float64(s.CancelledAmount), defaultCurrency)},
		{Label: "Días hábiles", Value: businessDays(start, end, c)},
	}
}

func businessDays(start, end string, c *cal.BusinessCalendar) string {
	from, okFrom := parseDate(start)
	to, okTo := parseDate(end)
	if !okFrom || !okTo || to.Before(from) {
		return ""
	}
	if c == nil {
		c = calendar.New()
	}
	return FormatCount(calendar.BusinessDays(c, from, to))
}

func folioLabel(r Receipt) string {
	folio, legacy := strings.TrimSpace(string(r.Folio)), strings.TrimSpace(string(r.LegacyFolio))
	switch {
	case folio == "":
		return legacy
	case legacy == "" || legacy == folio:
		return folio
	default:
		return folio + " / " + legacy
	}
}

func statusLabel(r Receipt) string {
	if s := strings.TrimSpace(r.StatusLabel); s != "" {
		return s
	}
	if r.Cancelled {
		return "Cancelado"
	}
	return "Vigente"
}

// receiptRow formats one receipt in receiptColumns order.
func receiptRow(r Receipt) tableRow {
	return tableRow{
		Cells: []string{
			folioLabel(r),
			FormatDate(r.PaymentDate),
			r.StudentName,
			r.Concept,
			r.CategoryLabel,
			statusLabel(r),
			FormatMoney(float64(r.Amount), r.Currency),
		},
		Cancelled: r.Cancelled,
	}
}
