package render

// Geometry holds page and table measurements in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginLeft   float64
	MarginRight  float64
	MarginBottom float64

	// TableBottom is the y position rows may not cross before a page break.
	TableBottom float64

	MinRowHeight float64
	CellPadding  float64
	LineHeight   float64

	// LabelRatio is the label column's share of the usable width.
	LabelRatio float64

	FontFamily    string
	TableFontSize float64
	ProseFontSize float64
	ProseLeading  float64

	// TableGap is the space left after the table before the closing text.
	TableGap float64
}

// DefaultGeometry is a US Letter page with 50pt margins.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     612,
		PageHeight:    792,
		MarginTop:     50,
		MarginLeft:    50,
		MarginRight:   50,
		MarginBottom:  50,
		TableBottom:   700,
		MinRowHeight:  20,
		CellPadding:   5,
		LineHeight:    12,
		LabelRatio:    0.35,
		FontFamily:    "Helvetica",
		TableFontSize: 9,
		ProseFontSize: 10,
		ProseLeading:  14,
		TableGap:      20,
	}
}

// ContentWidth is the usable width between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// Columns returns the label and value column widths; they sum to ContentWidth.
func (g Geometry) Columns() (label, value float64) {
	w := g.ContentWidth()
	label = w * g.LabelRatio
	return label, w - label
}
