package response

import (
	"time"

	"socis_remeses/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"member_id"`
	AmountCents  int64     `json:"amount_cents"`
	Amount       string    `json:"amount"`
	Concept      string    `json:"concept"`
	Period       string    `json:"period"`
	State        string    `json:"state"`
	RemittanceID string    `json:"remittance_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		MemberID:     q.MemberID,
		AmountCents:  q.AmountCents,
		Amount:       euros(q.AmountCents),
		Concept:      q.Concept,
		Period:       q.Period,
		State:        string(q.State),
		RemittanceID: q.RemittanceID,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// euros formats cents as a decimal amount in major units ("12.50").
func euros(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
