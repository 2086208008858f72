package domain

import "strings"

// LineBreak separates the lines of a multi-line cell value.
const LineBreak = "\n"

// Row labels, in table order.
const (
	LabelOrderingParty      = "Ordenante"
	LabelDebitAccount       = "Cuenta de cargo"
	LabelAmount             = "Importe"
	LabelBeneficiary        = "Beneficiario"
	LabelBeneficiaryAccount = "Cuenta del beneficiario"
	LabelBeneficiaryAddress = "Dirección del beneficiario"
	LabelBankAddress        = "Dirección del banco del beneficiario"
)

// TableRow is one label/value pair of the transfer table.
type TableRow struct {
	Label string
	Value string
}

// Lines returns the value split on explicit line breaks.
func (r TableRow) Lines() []string {
	return strings.Split(r.Value, LineBreak)
}

// LabelLines returns the label split on explicit line breaks.
func (r TableRow) LabelLines() []string {
	return strings.Split(r.Label, LineBreak)
}

// OrderingParty identifies the account holder issuing the letter.
type OrderingParty struct {
	Name         string
	DebitAccount string
}

// BeneficiaryAccount joins the seven routing sub-fields into one cell value.
// Empty sub-fields still produce their line so the order never shifts.
func BeneficiaryAccount(r WireTransferRequest) string {
	lines := []string{
		"Banco intermediario: " + r.IntermediaryBank,
		"Ciudad: " + r.IntermediaryCity,
		"SWIFT intermediario: " + r.IntermediarySwift,
		"ABA: " + r.IntermediaryABA,
		"Banco beneficiario: " + r.BeneficiaryBank,
		"SWIFT: " + r.BeneficiarySwift,
		"IBAN / Cuenta: " + r.BeneficiaryIBAN,
	}
	return strings.Join(lines, LineBreak)
}

// Rows derives the table rows for a request. amount is the formatted amount line.
func Rows(r WireTransferRequest, party OrderingParty, amount string) []TableRow {
	account := party.DebitAccount
	if r.DebitAccount != "" {
		account = r.DebitAccount
	}
	return []TableRow{
		{Label: LabelOrderingParty, Value: party.Name},
		{Label: LabelDebitAccount, Value: account},
		{Label: LabelAmount, Value: amount},
		{Label: LabelBeneficiary, Value: r.BeneficiaryName},
		{Label: LabelBeneficiaryAccount, Value: BeneficiaryAccount(r)},
		{Label: LabelBeneficiaryAddress, Value: r.BeneficiaryAddress},
		{Label: LabelBankAddress, Value: r.BeneficiaryBankAddress},
	}
}
