package render

import (
	"fmt"
	"time"

	"github.com/bft-labs/wireletter/internal/domain"
)

// Letter is the fixed prose wrapped around the transfer table.
type Letter struct {
	City string

	// Opening holds the salutation and body paragraphs printed above the table.
	Opening []string

	// Closing holds the paragraphs printed after the table.
	Closing []string

	Signature   string
	Attribution []string

	Party domain.OrderingParty
}

// DefaultLetter returns the Spanish letter used when nothing is configured.
func DefaultLetter() Letter {
	return Letter{
		City: "Madrid",
		Opening: []string{
			"Estimados señores:",
			"Por medio de la presente les solicitamos que procedan a ejecutar la siguiente " +
				"transferencia internacional con cargo a nuestra cuenta, de acuerdo con los datos " +
				"que se detallan a continuación.",
		},
		Closing: []string{
			"Los gastos de la operación serán por cuenta del ordenante. Quedamos a su disposición " +
				"para cualquier aclaración y les saludamos atentamente.",
		},
		Signature:   "______________________________",
		Attribution: []string{"Firma autorizada", "Departamento de Tesorería"},
	}
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DateLine renders "City, 15 de marzo de 2024". Unparseable dates are printed as given.
func (l Letter) DateLine(date string) string {
	text := date
	if t, ok := parseDate(date); ok {
		text = fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
	}
	if l.City == "" {
		return text
	}
	return l.City + ", " + text
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// documentTime is the PDF creation date; it only depends on the request date.
func documentTime(date string) time.Time {
	if t, ok := parseDate(date); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}
