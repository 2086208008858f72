package render

import (
	"context"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/money"
	"github.com/bft-labs/wireletter/pkg/log"
)

// Renderer turns transfer requests into PDF letters. It holds no per-request
// state and is safe for concurrent use.
type Renderer struct {
	geometry Geometry
	letter   Letter
	amounts  *money.Formatter
	logger   log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGeometry overrides the page and table measurements.
func WithGeometry(g Geometry) Option {
	return func(r *Renderer) { r.geometry = g }
}

// WithFormatter overrides the amount formatter.
func WithFormatter(f *money.Formatter) Option {
	return func(r *Renderer) { r.amounts = f }
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a Renderer for the given letter.
func New(letter Letter, opts ...Option) *Renderer {
	r := &Renderer{
		geometry: DefaultGeometry(),
		letter:   letter,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.amounts == nil {
		f, err := money.NewFormatter(money.DefaultLocale)
		if err != nil {
			panic(err)
		}
		r.amounts = f
	}
	return r
}

// Rows returns the table rows the renderer would draw for req.
func (r *Renderer) Rows(req domain.WireTransferRequest) []domain.TableRow {
	return domain.Rows(req, r.letter.Party, r.amounts.Format(req.Amount, req.Currency))
}

// Render paints req and returns the complete PDF. Failures are *domain.RenderError.
func (r *Renderer) Render(ctx context.Context, req domain.WireTransferRequest) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, &domain.RenderError{Err: err}
	}

	rows := r.Rows(req)
	if labels := unpaintable(rows); len(labels) > 0 {
		r.logger.Warn("characters outside the font code page are painted as '.'",
			log.String("reference", req.ReferenceID),
			log.Strings("rows", labels),
		)
	}
	var pages int
	data, err := collect(func(w io.Writer) error {
		pdf, err := r.paint(req, rows)
		if err != nil {
			return err
		}
		pages = pdf.PageCount()
		return pdf.Output(w)
	})
	if err != nil {
		r.logger.Error("render failed", log.String("reference", req.ReferenceID), log.Err(err))
		return domain.Document{}, &domain.RenderError{Err: err}
	}

	r.logger.Debug("letter rendered",
		log.String("reference", req.ReferenceID),
		log.Int("pages", pages),
		log.Int("bytes", len(data)),
	)
	return domain.Document{Data: data, Pages: pages}, nil
}

func (r *Renderer) paint(req domain.WireTransferRequest, rows []domain.TableRow) (*fpdf.Fpdf, error) {
	g := r.geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})

	stamp := documentTime(req.Date)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Wire Transfer "+req.ReferenceID, true)
	pdf.SetAuthor(r.letter.Party.Name, true)
	pdf.SetCreator("wireletter", false)

	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	pdf.SetAutoPageBreak(true, g.MarginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont(g.FontFamily, "", g.ProseFontSize)
	pdf.CellFormat(0, g.ProseLeading, tr(r.letter.DateLine(req.Date)), "", 1, "R", false, 0, "")
	pdf.Ln(g.ProseLeading)
	r.paragraphs(pdf, tr, r.letter.Opening)

	end := r.table(pdf, tr, rows)

	pdf.SetY(end + g.TableGap)
	pdf.SetFont(g.FontFamily, "", g.ProseFontSize)
	r.paragraphs(pdf, tr, r.letter.Closing)
	pdf.Ln(g.ProseLeading * 2)
	pdf.MultiCell(0, g.ProseLeading, tr(r.letter.Signature), "", "L", false)
	for _, line := range r.letter.Attribution {
		pdf.MultiCell(0, g.ProseLeading, tr(line), "", "L", false)
	}

	return pdf, pdf.Error()
}

func (r *Renderer) paragraphs(pdf *fpdf.Fpdf, tr func(string) string, paras []string) {
	g := r.geometry
	for _, p := range paras {
		pdf.MultiCell(0, g.ProseLeading, tr(p), "", "L", false)
		pdf.Ln(g.ProseLeading / 2)
	}
}

// table draws the rows with manual pagination and returns the y position
// just below the last row.
func (r *Renderer) table(pdf *fpdf.Fpdf, tr func(string) string, rows []domain.TableRow) float64 {
	g := r.geometry
	labelW, valueW := g.Columns()
	first := pdf.PageNo()
	end := pdf.GetY()

	for _, p := range g.Paginate(pdf.GetY(), rows) {
		for pdf.PageNo() < first+p.Page {
			pdf.AddPage()
		}
		x := g.MarginLeft
		pdf.Rect(x, p.Y, labelW, p.Height, "D")
		pdf.Rect(x+labelW, p.Y, valueW, p.Height, "D")

		pdf.SetFont(g.FontFamily, "B", g.TableFontSize)
		r.cellText(pdf, tr, x, p.Y, p.Row.LabelLines())
		pdf.SetFont(g.FontFamily, "", g.TableFontSize)
		r.cellText(pdf, tr, x+labelW, p.Y, p.Row.Lines())

		end = p.Y + p.Height
	}
	return end
}

// cellText writes lines top-left aligned inside a cell, one per LineHeight.
func (r *Renderer) cellText(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, lines []string) {
	g := r.geometry
	for i, line := range lines {
		baseline := y + g.CellPadding + float64(i)*g.LineHeight + g.TableFontSize
		pdf.Text(x+g.CellPadding, baseline, tr(line))
	}
}
