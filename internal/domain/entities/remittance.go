package entities

import (
	"fmt"
	"time"
)

// RemittanceState only moves forward: draft -> generated -> submitted. Drafts can
// be cancelled, which deletes them.
type RemittanceState string

const (
	RemittanceStateDraft     RemittanceState = "draft"
	RemittanceStateGenerated RemittanceState = "generated"
	RemittanceStateSubmitted RemittanceState = "submitted"
)

// Next returns the state that follows s, or "" when s is terminal.
func (s RemittanceState) Next() RemittanceState {
	switch s {
	case RemittanceStateDraft:
		return RemittanceStateGenerated
	case RemittanceStateGenerated:
		return RemittanceStateSubmitted
	}
	return ""
}

// Creditor identifies the collecting organisation.
type Creditor struct {
	Name string `json:"name"`
	IBAN string `json:"iban"`
	BIC  string `json:"bic,omitempty"`
	ID   string `json:"creditor_id"`
}

// Remittance (remesa) is a batch of direct-debit collections submitted together.
// TotalCents is always the exact sum of its lines.
type Remittance struct {
	ID            string          `json:"id"`
	ExecutionDate time.Time       `json:"execution_date"`
	Creditor      Creditor        `json:"creditor"`
	TotalCents    int64           `json:"total_cents"`
	State         RemittanceState `json:"state"`
	QuoteIDs      []string        `json:"quote_ids"`
	MessageID     string          `json:"message_id,omitempty"`
	FileRef       string          `json:"xml_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	GeneratedAt   time.Time       `json:"generated_at,omitempty"`
	SubmittedAt   time.Time       `json:"submitted_at,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RemittanceLine is one quote's participation in one remittance. The mandate and
// debtor fields are a snapshot taken at build time for the bank file.
type RemittanceLine struct {
	ID                   string       `json:"id"`
	RemittanceID         string       `json:"remittance_id"`
	MemberID             string       `json:"member_id"`
	QuoteID              string       `json:"quote_id"`
	MandateID            string       `json:"mandate_id"`
	AmountCents          int64        `json:"amount_cents"`
	EndToEndID           string       `json:"end_to_end_id"`
	Sequence             SequenceType `json:"sequence"`
	MandateReference     string       `json:"mandate_reference"`
	MandateSignatureDate time.Time    `json:"mandate_sign_date"`
	DebtorName           string       `json:"debtor_name"`
	DebtorIBAN           string       `json:"debtor_iban"`
	DebtorBIC            string       `json:"debtor_bic,omitempty"`
	Concept              string       `json:"concept"`
}

// EndToEndID formats the end-to-end id of the line at zero-based index i.
func EndToEndID(remittanceID string, i int) string {
	return fmt.Sprintf("%s-%04d", remittanceID, i+1)
}

// MaxAmountCents is the largest amount pain.008 can carry, for a single
// transaction as well as for a control sum (999999999.99).
const MaxAmountCents int64 = 99_999_999_999

// SumLines returns the exact integer total of the line amounts.
func SumLines(lines []RemittanceLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.AmountCents
	}
	return total
}

// RemittanceDocument is a remittance together with its lines, the unit the XML
// codec renders and parses.
type RemittanceDocument struct {
	Remittance Remittance       `json:"remittance"`
	Lines      []RemittanceLine `json:"lines"`
}

// Receipt (rebut) is a remittance line joined with its member and quote, as
// listed on the receipts page.
type Receipt struct {
	LineID        string     `json:"line_id"`
	RemittanceID  string     `json:"remittance_id"`
	MemberID      string     `json:"member_id"`
	MemberName    string     `json:"member_name"`
	QuoteID       string     `json:"quote_id"`
	AmountCents   int64      `json:"amount_cents"`
	Status        QuoteState `json:"status"`
	Reference     string     `json:"reference"`
	Concept       string     `json:"concept"`
	ExecutionDate time.Time  `json:"execution_date"`
}
