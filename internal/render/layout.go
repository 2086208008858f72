package render

import (
	"strings"

	"github.com/bft-labs/wireletter/internal/domain"
)

// Placement locates one table row on the output.
type Placement struct {
	Row    domain.TableRow
	Page   int // zero-based, relative to the page the table starts on
	Y      float64
	Height float64
}

// RowHeight estimates the height of a row from its explicit line breaks.
func (g Geometry) RowHeight(row domain.TableRow) float64 {
	lines := lineCount(row.Value)
	if n := lineCount(row.Label); n > lines {
		lines = n
	}
	h := 2*g.CellPadding + float64(lines)*g.LineHeight
	if h < g.MinRowHeight {
		return g.MinRowHeight
	}
	return h
}

func lineCount(s string) int {
	return strings.Count(s, domain.LineBreak) + 1
}

// Paginate assigns every row a page and a y offset, starting at startY on
// the table's first page.
func (g Geometry) Paginate(startY float64, rows []domain.TableRow) []Placement {
	placements := make([]Placement, 0, len(rows))
	page, y := 0, startY
	for _, row := range rows {
		h := g.RowHeight(row)
		if y+h > g.TableBottom {
			page++
			y = g.MarginTop
		}
		placements = append(placements, Placement{Row: row, Page: page, Y: y, Height: h})
		y += h
	}
	return placements
}
