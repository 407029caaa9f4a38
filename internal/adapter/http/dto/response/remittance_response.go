package response

import (
	"time"

	"socis_remeses/internal/domain/entities"
)

type CreditorResponse struct {
	Name string `json:"name"`
	IBAN string `json:"iban"`
	BIC  string `json:"bic,omitempty"`
	ID   string `json:"creditor_id"`
}

type RemittanceResponse struct {
	ID            string                   `json:"id"`
	ExecutionDate string                   `json:"execution_date"`
	Creditor      CreditorResponse         `json:"creditor"`
	TotalCents    int64                    `json:"total_cents"`
	Total         string                   `json:"total"`
	State         string                   `json:"state"`
	QuoteIDs      []string                 `json:"quote_ids"`
	MessageID     string                   `json:"message_id,omitempty"`
	XMLURL        string                   `json:"xml_url,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	GeneratedAt   *time.Time               `json:"generated_at,omitempty"`
	SubmittedAt   *time.Time               `json:"submitted_at,omitempty"`
	Lines         []RemittanceLineResponse `json:"lines,omitempty"`
}

type RemittanceLineResponse struct {
	ID               string `json:"id"`
	MemberID         string `json:"member_id"`
	QuoteID          string `json:"quote_id"`
	MandateID        string `json:"mandate_id,omitempty"`
	AmountCents      int64  `json:"amount_cents"`
	Amount           string `json:"amount"`
	EndToEndID       string `json:"end_to_end_id"`
	Sequence         string `json:"sequence"`
	MandateReference string `json:"mandate_reference"`
	MandateSignDate  string `json:"mandate_sign_date"`
	DebtorName       string `json:"debtor_name"`
	DebtorIBAN       string `json:"debtor_iban"`
	DebtorBIC        string `json:"debtor_bic,omitempty"`
	Concept          string `json:"concept"`
}

func FromRemittance(r entities.Remittance) RemittanceResponse {
	return RemittanceResponse{
		ID:            r.ID,
		ExecutionDate: formatDate(r.ExecutionDate),
		Creditor:      CreditorResponse{Name: r.Creditor.Name, IBAN: r.Creditor.IBAN, BIC: r.Creditor.BIC, ID: r.Creditor.ID},
		TotalCents:    r.TotalCents,
		Total:         euros(r.TotalCents),
		State:         string(r.State),
		QuoteIDs:      r.QuoteIDs,
		MessageID:     r.MessageID,
		XMLURL:        r.FileRef,
		CreatedAt:     r.CreatedAt,
		GeneratedAt:   optionalTime(r.GeneratedAt),
		SubmittedAt:   optionalTime(r.SubmittedAt),
	}
}

func FromRemittances(rs []entities.Remittance) []RemittanceResponse {
	out := make([]RemittanceResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRemittance(r))
	}
	return out
}

func FromRemittanceDocument(doc entities.RemittanceDocument) RemittanceResponse {
	out := FromRemittance(doc.Remittance)
	out.Lines = make([]RemittanceLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		out.Lines = append(out.Lines, RemittanceLineResponse{
			ID:               l.ID,
			MemberID:         l.MemberID,
			QuoteID:          l.QuoteID,
			MandateID:        l.MandateID,
			AmountCents:      l.AmountCents,
			Amount:           euros(l.AmountCents),
			EndToEndID:       l.EndToEndID,
			Sequence:         string(l.Sequence),
			MandateReference: l.MandateReference,
			MandateSignDate:  formatDate(l.MandateSignatureDate),
			DebtorName:       l.DebtorName,
			DebtorIBAN:       l.DebtorIBAN,
			DebtorBIC:        l.DebtorBIC,
			Concept:          l.Concept,
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
