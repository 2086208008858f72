package mail

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bft-labs/wireletter/internal/domain"
)

// AttachmentName is the file name of the letter attached to the email.
func AttachmentName(reference string) string {
	return fmt.Sprintf("Wire_Transfer_%s.pdf", reference)
}

// Subject is the email subject for a reference.
func Subject(reference string) string {
	return "Wire Transfer Request " + reference
}

var summaryTemplate = template.Must(template.New("summary").Parse(`<h2>Wire Transfer Request {{.ReferenceID}}</h2>
<p>A new wire transfer request was submitted by {{.SubmitterName}} ({{.SubmitterEmail}}).</p>
<table cellpadding="4" cellspacing="0" border="1">
<tr><td><strong>Reference</strong></td><td>{{.ReferenceID}}</td></tr>
<tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
<tr><td><strong>Amount</strong></td><td>{{.Amount}} {{.Currency}}</td></tr>
<tr><td><strong>Beneficiary</strong></td><td>{{.Beneficiary}}</td></tr>
<tr><td><strong>Bank</strong></td><td>{{.Bank}}</td></tr>
<tr><td><strong>SWIFT</strong></td><td>{{.Swift}}</td></tr>
<tr><td><strong>IBAN / Account</strong></td><td>{{.IBAN}}</td></tr>
<tr><td><strong>Purpose</strong></td><td>{{.Purpose}}</td></tr>
</table>
<p>The transfer letter is attached as {{.Attachment}}.</p>
`))

type summaryView struct {
	domain.Summary
	Attachment string
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// textSanitizer strips all markup and escapes what is left.
func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// SummaryHTML renders the email body. Every field is reduced to escaped
// plain text before it is placed in the markup.
func SummaryHTML(s domain.Summary) (string, error) {
	p := textSanitizer()
	clean := domain.Summary{
		ReferenceID:    p.Sanitize(s.ReferenceID),
		SubmitterName:  p.Sanitize(s.SubmitterName),
		SubmitterEmail: p.Sanitize(s.SubmitterEmail),
		Amount:         p.Sanitize(s.Amount),
		Currency:       p.Sanitize(s.Currency),
		Beneficiary:    p.Sanitize(s.Beneficiary),
		Bank:           p.Sanitize(s.Bank),
		Swift:          p.Sanitize(s.Swift),
		IBAN:           p.Sanitize(s.IBAN),
		Purpose:        p.Sanitize(s.Purpose),
		Date:           p.Sanitize(s.Date),
	}

	var buf bytes.Buffer
	view := summaryView{Summary: clean, Attachment: p.Sanitize(AttachmentName(s.ReferenceID))}
	if err := summaryTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return buf.String(), nil
}
