package response

import "socis_remeses/internal/domain/entities"

type ReceiptResponse struct {
	LineID        string `json:"line_id"`
	RemittanceID  string `json:"remittance_id"`
	MemberID      string `json:"member_id"`
	MemberName    string `json:"member_name"`
	QuoteID       string `json:"quote_id"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	Concept       string `json:"concept"`
	ExecutionDate string `json:"execution_date"`
}

func FromReceipts(rs []entities.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReceiptResponse{
			LineID:        r.LineID,
			RemittanceID:  r.RemittanceID,
			MemberID:      r.MemberID,
			MemberName:    r.MemberName,
			QuoteID:       r.QuoteID,
			AmountCents:   r.AmountCents,
			Amount:        euros(r.AmountCents),
			Status:        string(r.Status),
			Reference:     r.Reference,
			Concept:       r.Concept,
			ExecutionDate: formatDate(r.ExecutionDate),
		})
	}
	return out
}
