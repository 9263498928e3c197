package report

import (
	"math"
	"math/rand"
	"testing"
)

func TestLayoutColumnsSumsExactly(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		cols  []Column
		flex  string
	}{
		{"receipts on letter", 540, receiptColumns, "concepto"},
		{"receipts on a4", 595.28 - 72, receiptColumns, "concepto"},
		{"breakdown", 540, breakdownColumns, "tipo"},
		{"fractional widths", 523.28, []Column{
			{Key: "a", Width: 33.3},
			{Key: "b", Width: 10.1},
			{Key: "flex"},
			{Key: "c", Width: 0.7},
			{Key: "d", Width: 77.77},
		}, "flex"},
		{"many fixed columns", 300, []Column{
			{Key: "a", Width: 100}, {Key: "b", Width: 100}, {Key: "flex"},
			{Key: "c", Width: 100}, {Key: "d", Width: 100}, {Key: "e", Width: 100},
		}, "flex"},
		{"scaled two-decimal widths", 468.14, []Column{
			{Key: "a", Width: 37.02},
			{Key: "b", Width: 146.57},
			{Key: "c", Width: 143.7},
			{Key: "flex"},
			{Key: "d", Width: 83.75},
			{Key: "e", Width: 40.33},
			{Key: "f", Width: 75.88},
		}, "flex"},
		{"rounding after the flexible column", 836.42, []Column{
			{Key: "a", Width: 139.78},
			{Key: "b", Width: 86.92},
			{Key: "flex"},
			{Key: "c", Width: 198.69},
		}, "flex"},
		{"no flexible key", 200, []Column{{Key: "a", Width: 50}, {Key: "b", Width: 60}}, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := LayoutColumns(tt.total, tt.cols, tt.flex)
			if len(cols) != len(tt.cols) {
				t.Fatalf("LayoutColumns returned %d columns, want %d", len(cols), len(tt.cols))
			}
			if got := sumWidths(cols); got != tt.total {
				t.Errorf("sum of widths = %v, want exactly %v", got, tt.total)
			}
			for _, c := range cols {
				if c.Width < 0 {
					t.Errorf("column %q has negative width %v", c.Key, c.Width)
				}
			}
		})
	}
}

func TestLayoutColumnsRandomWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cents := func(limit int) float64 { return float64(rng.Intn(limit*100)) / 100 }

	for n := 0; n < 20000; n++ {
		cols := make([]Column, 2+rng.Intn(7))
		flex := rng.Intn(len(cols))
		for i := range cols {
			cols[i].Key = string(rune('a' + i))
			if i != flex {
				cols[i].Width = cents(200)
			}
		}
		total := 0.01 + cents(900)
		if n%4 == 0 {
			total = 0.01 + cents(5)
		}

		got := LayoutColumns(total, cols, cols[flex].Key)
		if sum := sumWidths(got); sum != total {
			t.Fatalf("case %d: widths %v sum to %v, want exactly %v", n, widths(got), sum, total)
		}
		for _, c := range got {
			if c.Width < 0 || math.IsNaN(c.Width) {
				t.Fatalf("case %d: column %q has width %v", n, c.Key, c.Width)
			}
		}
	}
}

func TestLayoutColumnsNonPositiveTotal(t *testing.T) {
	cols := LayoutColumns(0, breakdownColumns, "tipo")
	if cols[0].Width != 0 {
		t.Errorf("flexible width = %v, want 0", cols[0].Width)
	}
}

func widths(cols []Column) []float64 {
	out := make([]float64, len(cols))
	for i, c := range cols {
		out[i] = c.Width
	}
	return out
}

func TestLayoutColumnsFlexAbsorbsRemainder(t *testing.T) {
	cols := LayoutColumns(540, receiptColumns, "concepto")

	for _, c := range cols {
		if c.Key == "concepto" && c.Width != 100 {
			t.Errorf("concepto width = %v, want 100", c.Width)
		}
		if c.Key == "folio" && c.Width != 62 {
			t.Errorf("folio width = %v, want 62 (fixed columns keep their width)", c.Width)
		}
	}
	if receiptColumns[3].Width != 0 {
		t.Error("LayoutColumns must not modify its input")
	}
}

func TestColumnOffsets(t *testing.T) {
	cols := []Column{{Width: 10}, {Width: 20}, {Width: 30}}
	got := columnOffsets(36, cols)
	want := []float64{36, 46, 66}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
