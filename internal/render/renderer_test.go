package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/ports"
)

var _ ports.LetterRenderer = (*Renderer)(nil)

func sampleRequest() domain.WireTransferRequest {
	return domain.WireTransferRequest{
		ReferenceID:            "WT-2024-001",
		Date:                   "2024-03-15",
		BeneficiaryName:        "Acme Supplies LLC",
		BeneficiaryAddress:     "100 Main St, Springfield",
		BeneficiaryBank:        "First National Bank",
		BeneficiaryBankAddress: "1 Bank Plaza, New York",
		BeneficiarySwift:       "FNBKUS33",
		BeneficiaryIBAN:        "US12345678901234",
		IntermediaryBank:       "Citibank",
		IntermediaryCity:       "New York",
		IntermediarySwift:      "CITIUS33",
		IntermediaryABA:        "021000089",
		Amount:                 decimal.RequireFromString("1234.5"),
		Currency:               "USD",
		SubmitterName:          "Ana García",
		SubmitterEmail:         "ana@example.com",
	}
}

func testLetter() Letter {
	l := DefaultLetter()
	l.Party = domain.OrderingParty{Name: "Exportadora del Sur S.A.", DebitAccount: "ES91 2100 0418 4502 0005 1332"}
	return l
}

func TestRender_SinglePage(t *testing.T) {
	doc, err := New(testLetter()).Render(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", doc.Data[:min(len(doc.Data), 16)])
	}
	if doc.Pages != 1 {
		t.Errorf("Pages = %d, want 1", doc.Pages)
	}
}

func TestRender_LongValueAddsPages(t *testing.T) {
	req := sampleRequest()
	req.BeneficiaryAddress = strings.Repeat("Suite 100"+domain.LineBreak, 60) + "Springfield"

	doc, err := New(testLetter()).Render(context.Background(), req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Pages < 2 {
		t.Errorf("Pages = %d, want more than 1", doc.Pages)
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := New(testLetter())
	first, err := r.Render(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := r.Render(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Error("rendering the same request twice produced different bytes")
	}
}

func TestRender_EngineErrorIsRenderError(t *testing.T) {
	g := DefaultGeometry()
	g.FontFamily = "NoSuchFont"

	doc, err := New(testLetter(), WithGeometry(g)).Render(context.Background(), sampleRequest())
	var renderErr *domain.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Render() error = %v, want RenderError", err)
	}
	if doc.Data != nil {
		t.Errorf("Render() returned %d bytes on failure", len(doc.Data))
	}
}

func TestRender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testLetter()).Render(ctx, sampleRequest())
	var renderErr *domain.RenderError
	if !errors.As(err, &renderErr) || !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want RenderError wrapping context.Canceled", err)
	}
}

func TestRenderer_RowsUseFormattedAmount(t *testing.T) {
	rows := New(testLetter()).Rows(sampleRequest())
	if rows[2].Label != domain.LabelAmount || rows[2].Value != "1.234,50 USD" {
		t.Errorf("amount row = %+v, want 1.234,50 USD", rows[2])
	}
}

func TestRender_ClosingOverflowsAfterTable(t *testing.T) {
	letter := testLetter()
	letter.Opening = nil
	r := New(letter)
	g := DefaultGeometry()
	// date line and the blank line after it
	tableTop := g.MarginTop + 2*g.ProseLeading

	// Grow the address until one more line would push a row past TableBottom.
	var req domain.WireTransferRequest
	var placements []Placement
	for n := 1; n < 100; n++ {
		candidate := sampleRequest()
		candidate.BeneficiaryAddress = strings.Repeat("Suite 100"+domain.LineBreak, n) + "Springfield"
		p := g.Paginate(tableTop, r.Rows(candidate))
		if p[len(p)-1].Page > 0 {
			break
		}
		req, placements = candidate, p
	}
	if placements == nil {
		t.Fatal("no address length keeps the table on one page")
	}
	for _, p := range placements {
		if p.Page != 0 {
			t.Fatalf("row %q placed on page %d, want 0", p.Row.Label, p.Page)
		}
	}

	last := placements[len(placements)-1]
	closingTop := last.Y + last.Height + g.TableGap
	closingHeight := float64(len(letter.Closing))*1.5*g.ProseLeading +
		float64(3+len(letter.Attribution))*g.ProseLeading
	if closingTop+closingHeight <= g.PageHeight-g.MarginBottom {
		t.Fatalf("closing fits below the table (top %.0f), test setup is wrong", closingTop)
	}

	doc, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Pages != 2 {
		t.Errorf("Pages = %d, want 2 (table on page 1, closing continued on page 2)", doc.Pages)
	}
}
