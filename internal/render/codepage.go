package render

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/bft-labs/wireletter/internal/domain"
)

// coreFontCharset is the code page of fpdf's built-in fonts. Runes outside it
// are painted as ".".
var coreFontCharset = charmap.Windows1252

// unpaintable returns the labels of rows whose value holds runes the core
// fonts cannot draw.
func unpaintable(rows []domain.TableRow) []string {
	var labels []string
	for _, row := range rows {
		if !paintable(row.Value) {
			labels = append(labels, row.Label)
		}
	}
	return labels
}

func paintable(s string) bool {
	for _, r := range s {
		if _, ok := coreFontCharset.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}
