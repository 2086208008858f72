package render

import (
	"strings"
	"testing"

	"github.com/bft-labs/wireletter/internal/domain"
)

func lines(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "line"
	}
	return strings.Join(parts, domain.LineBreak)
}

func TestGeometry_Columns(t *testing.T) {
	g := DefaultGeometry()
	label, value := g.Columns()
	if label >= value {
		t.Errorf("label column %v should be narrower than value column %v", label, value)
	}
	if got := label + value; got != g.ContentWidth() {
		t.Errorf("columns sum to %v, want %v", got, g.ContentWidth())
	}
	if g.ContentWidth() != 512 {
		t.Errorf("ContentWidth() = %v, want 512", g.ContentWidth())
	}
}

func TestRowHeight(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name string
		row  domain.TableRow
		want float64
	}{
		{"single line", domain.TableRow{Label: "Importe", Value: "1.234,50 USD"}, 22},
		{"empty value", domain.TableRow{Label: "Beneficiario", Value: ""}, 22},
		{"seven lines", domain.TableRow{Label: "Cuenta", Value: lines(7)}, 94},
		{"label drives height", domain.TableRow{Label: lines(3), Value: "x"}, 46},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.RowHeight(tt.row); got != tt.want {
				t.Errorf("RowHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowHeight_MinimumAndMonotonic(t *testing.T) {
	g := DefaultGeometry()
	g.MinRowHeight = 40

	prev := 0.0
	for n := 1; n <= 20; n++ {
		h := g.RowHeight(domain.TableRow{Label: "L", Value: lines(n)})
		if h < g.MinRowHeight {
			t.Fatalf("RowHeight(%d lines) = %v below minimum %v", n, h, g.MinRowHeight)
		}
		if h < prev {
			t.Fatalf("RowHeight(%d lines) = %v decreased from %v", n, h, prev)
		}
		prev = h
	}
	if got := g.RowHeight(domain.TableRow{Label: "L", Value: "x"}); got != 40 {
		t.Errorf("single line with high minimum = %v, want 40", got)
	}
}

func TestRowHeight_LongUnbrokenLineNotMeasured(t *testing.T) {
	g := DefaultGeometry()
	long := strings.Repeat("WIDE ", 200)
	if got := g.RowHeight(domain.TableRow{Label: "L", Value: long}); got != 22 {
		t.Errorf("RowHeight() = %v, want 22 (explicit breaks only)", got)
	}
}

func TestPaginate_SinglePage(t *testing.T) {
	g := DefaultGeometry()
	rows := []domain.TableRow{
		{Label: "a", Value: "1"},
		{Label: "b", Value: "2"},
		{Label: "c", Value: lines(7)},
	}

	got := g.Paginate(150, rows)
	if len(got) != len(rows) {
		t.Fatalf("got %d placements, want %d", len(got), len(rows))
	}
	wantY := []float64{150, 172, 194}
	for i, p := range got {
		if p.Page != 0 {
			t.Errorf("row %d on page %d, want 0", i, p.Page)
		}
		if p.Y != wantY[i] {
			t.Errorf("row %d Y = %v, want %v", i, p.Y, wantY[i])
		}
		if p.Row != rows[i] {
			t.Errorf("row %d out of order: %+v", i, p.Row)
		}
	}
}

func TestPaginate_BreaksBeforeOverflowingRow(t *testing.T) {
	g := DefaultGeometry()
	rows := []domain.TableRow{
		{Label: "a", Value: "1"},
		{Label: "b", Value: lines(50)}, // 610pt, does not fit below 600
		{Label: "c", Value: "3"},
	}

	got := g.Paginate(600, rows)

	if got[0].Page != 0 || got[0].Y != 600 {
		t.Errorf("first row = page %d y %v, want page 0 y 600", got[0].Page, got[0].Y)
	}
	if got[1].Page != 1 || got[1].Y != g.MarginTop {
		t.Errorf("tall row = page %d y %v, want page 1 y %v", got[1].Page, got[1].Y, g.MarginTop)
	}
	wantY := g.MarginTop + got[1].Height
	if got[2].Page != 1 || got[2].Y != wantY {
		t.Errorf("last row = page %d y %v, want page 1 y %v", got[2].Page, got[2].Y, wantY)
	}
}

func TestPaginate_RowTallerThanPageIsNotSplit(t *testing.T) {
	g := DefaultGeometry()
	rows := []domain.TableRow{
		{Label: "huge", Value: lines(80)}, // 970pt
		{Label: "after", Value: "x"},
	}

	got := g.Paginate(300, rows)

	if got[0].Page != 1 || got[0].Y != g.MarginTop {
		t.Errorf("huge row = page %d y %v, want page 1 at top margin", got[0].Page, got[0].Y)
	}
	if got[0].Y+got[0].Height <= g.TableBottom {
		t.Errorf("huge row should overflow the boundary")
	}
	if got[1].Page != 2 || got[1].Y != g.MarginTop {
		t.Errorf("following row = page %d y %v, want page 2 at top margin", got[1].Page, got[1].Y)
	}
}

func TestPaginate_ExactFitStaysOnPage(t *testing.T) {
	g := DefaultGeometry()
	rows := []domain.TableRow{{Label: "a", Value: "1"}}
	got := g.Paginate(g.TableBottom-22, rows)
	if got[0].Page != 0 {
		t.Errorf("row ending exactly at the boundary moved to page %d", got[0].Page)
	}
}
