package domain

import "github.com/shopspring/decimal"

// WireTransferRequest is a complete wire-transfer submission.
type WireTransferRequest struct {
	ReferenceID string `json:"referenceId" yaml:"referenceId"`
	Date        string `json:"date" yaml:"date"`

	BeneficiaryName        string `json:"beneficiaryName" yaml:"beneficiaryName"`
	BeneficiaryAddress     string `json:"beneficiaryAddress" yaml:"beneficiaryAddress"`
	BeneficiaryBank        string `json:"beneficiaryBank" yaml:"beneficiaryBank"`
	BeneficiaryBankAddress string `json:"beneficiaryBankAddress" yaml:"beneficiaryBankAddress"`
	BeneficiarySwift       string `json:"beneficiarySwift" yaml:"beneficiarySwift"`
	BeneficiaryIBAN        string `json:"beneficiaryIban" yaml:"beneficiaryIban"`

	IntermediaryBank  string `json:"intermediaryBank" yaml:"intermediaryBank"`
	IntermediaryCity  string `json:"intermediaryCity" yaml:"intermediaryCity"`
	IntermediarySwift string `json:"intermediarySwift" yaml:"intermediarySwift"`
	IntermediaryABA   string `json:"intermediaryAba" yaml:"intermediaryAba"`

	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`

	SubmitterName  string `json:"submitterName" yaml:"submitterName"`
	SubmitterEmail string `json:"submitterEmail" yaml:"submitterEmail"`

	// Purpose is free text shown in the dispatch summary only.
	Purpose string `json:"purpose,omitempty" yaml:"purpose,omitempty"`

	// DebitAccount overrides the letter's configured debit account.
	DebitAccount string `json:"debitAccount,omitempty" yaml:"debitAccount,omitempty"`
}

// Summary is the subset of a request echoed in the dispatch email body.
type Summary struct {
	ReferenceID    string
	SubmitterName  string
	SubmitterEmail string
	Amount         string
	Currency       string
	Beneficiary    string
	Bank           string
	Swift          string
	IBAN           string
	Purpose        string
	Date           string
}

// Summarize builds the dispatch summary. amount is the already formatted amount.
func (r WireTransferRequest) Summarize(amount string) Summary {
	return Summary{
		ReferenceID:    r.ReferenceID,
		SubmitterName:  r.SubmitterName,
		SubmitterEmail: r.SubmitterEmail,
		Amount:         amount,
		Currency:       r.Currency,
		Beneficiary:    r.BeneficiaryName,
		Bank:           r.BeneficiaryBank,
		Swift:          r.BeneficiarySwift,
		IBAN:           r.BeneficiaryIBAN,
		Purpose:        r.Purpose,
		Date:           r.Date,
	}
}
